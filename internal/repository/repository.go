package repository

import (
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update persists changes to an existing user
	Update(user *models.User) error
}

// FirmRepository defines the interface for firm data access
type FirmRepository interface {
	// Create creates a new firm
	Create(firm *models.Firm) error

	// FindByName finds a firm by its exact name
	FindByName(name string) (*models.Firm, error)
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// Create creates a new product
	Create(product *models.Product) error

	// FindByID finds a product by ID with its producer preloaded
	FindByID(id uint64) (*models.Product, error)

	// FindFirstByType finds the first product with the given exact type
	FindFirstByType(productType string) (*models.Product, error)

	// ListByFirm lists all products produced by a firm
	ListByFirm(firmID uint64) ([]models.Product, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	// Create creates a new post
	Create(post *models.Post) error

	// FindByID finds a post by ID with its author preloaded
	FindByID(id uint64) (*models.Post, error)

	// ListAll lists every post, newest first
	ListAll() ([]models.Post, error)

	// Update persists changes to an existing post
	Update(post *models.Post) error

	// Delete removes a post
	Delete(id uint64) error
}
