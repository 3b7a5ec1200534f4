package repository

import (
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"gorm.io/gorm"
)

// GormProductRepository is a GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// Create creates a new product
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// FindByID finds a product by ID with its producer preloaded
func (r *GormProductRepository) FindByID(id uint64) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Producer").First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindFirstByType finds the first product with the given exact type
func (r *GormProductRepository) FindFirstByType(productType string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("type = ?", productType).Order("id").First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListByFirm lists all products produced by a firm
func (r *GormProductRepository) ListByFirm(firmID uint64) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Where("firm_producer = ?", firmID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
