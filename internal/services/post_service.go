package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrNotPostOwner     = errors.New("only the post author can perform this action")
	ErrPostTitleEmpty   = errors.New("title cannot be empty")
	ErrUnknownProduct   = errors.New("tagged product does not exist")
	ErrFailedToSavePost = errors.New("failed to save post")
)

// PostService handles blog post business logic.
type PostService struct {
	postRepo    repository.PostRepository
	productRepo repository.ProductRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, productRepo repository.ProductRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		productRepo: productRepo,
	}
}

// CreatePostInput represents input for creating a post.
type CreatePostInput struct {
	Title     string
	Content   string
	ProductID *uint64
	AuthorID  uint64
}

// CreatePost creates a post owned by the author. An optional product tag is
// validated against the catalogue.
func (s *PostService) CreatePost(input CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleEmpty
	}

	if input.ProductID != nil {
		if _, err := s.productRepo.FindByID(*input.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownProduct
			}
			return nil, fmt.Errorf("failed to check product: %w", err)
		}
	}

	post := &models.Post{
		Title:     title,
		Content:   input.Content,
		ProductID: input.ProductID,
		UserID:    input.AuthorID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, ErrFailedToSavePost
	}

	return post, nil
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts() ([]models.Post, error) {
	posts, err := s.postRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// GetPost retrieves a post by ID.
func (s *PostService) GetPost(id uint64) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return post, nil
}

// UpdatePostInput represents the editable post fields.
type UpdatePostInput struct {
	Title   string
	Content string
}

// UpdatePost mutates title and content. Only the owning user may update; any
// other actor gets ErrNotPostOwner and the post is left untouched.
func (s *PostService) UpdatePost(postID, actorID uint64, input UpdatePostInput) (*models.Post, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != actorID {
		return nil, ErrNotPostOwner
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleEmpty
	}

	post.Title = title
	post.Content = input.Content

	if err := s.postRepo.Update(post); err != nil {
		return nil, ErrFailedToSavePost
	}

	return post, nil
}

// DeletePost removes a post. Same ownership rule as UpdatePost.
func (s *PostService) DeletePost(postID, actorID uint64) error {
	post, err := s.GetPost(postID)
	if err != nil {
		return err
	}
	if post.UserID != actorID {
		return ErrNotPostOwner
	}

	if err := s.postRepo.Delete(post.ID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}
