package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrFirmNotFound    = errors.New("firm not found")
	ErrProductNotFound = errors.New("product not found")
	ErrNoSearchMatch   = errors.New("no firm or product matches the query")
)

// DirectoryService handles firm/product browsing and the directory search.
type DirectoryService struct {
	firmRepo    repository.FirmRepository
	productRepo repository.ProductRepository
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(firmRepo repository.FirmRepository, productRepo repository.ProductRepository) *DirectoryService {
	return &DirectoryService{
		firmRepo:    firmRepo,
		productRepo: productRepo,
	}
}

// GetFirmPage returns a firm and its products.
func (s *DirectoryService) GetFirmPage(name string) (*models.Firm, []models.Product, error) {
	firm, err := s.firmRepo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrFirmNotFound
		}
		return nil, nil, fmt.Errorf("failed to find firm: %w", err)
	}

	products, err := s.productRepo.ListByFirm(firm.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list products: %w", err)
	}

	return firm, products, nil
}

// GetProduct retrieves a product by ID.
func (s *DirectoryService) GetProduct(id uint64) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

// Search resolves a free-text query to a redirect path: an exact firm name
// wins, then an exact product type. No match is ErrNoSearchMatch, an explicit
// result rather than a failure.
func (s *DirectoryService) Search(query string) (string, error) {
	firm, err := s.firmRepo.FindByName(query)
	if err == nil {
		return "/firm/" + firm.Name, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to search firms: %w", err)
	}

	product, err := s.productRepo.FindFirstByType(query)
	if err == nil {
		return "/product/" + strconv.FormatUint(product.ID, 10), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to search products: %w", err)
	}

	return "", ErrNoSearchMatch
}
