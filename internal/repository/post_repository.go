package repository

import (
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID with its author preloaded
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Product").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListAll lists every post, newest first
func (r *GormPostRepository) ListAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Preload("Author").Order("date_posted DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Update persists changes to an existing post
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post
func (r *GormPostRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Post{}, id).Error
}
