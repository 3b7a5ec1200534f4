package repository

import (
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"gorm.io/gorm"
)

// GormFirmRepository is a GORM implementation of FirmRepository
type GormFirmRepository struct {
	db *gorm.DB
}

// NewFirmRepository creates a new FirmRepository
func NewFirmRepository(db *gorm.DB) FirmRepository {
	return &GormFirmRepository{db: db}
}

// Create creates a new firm
func (r *GormFirmRepository) Create(firm *models.Firm) error {
	return r.db.Create(firm).Error
}

// FindByName finds a firm by its exact name
func (r *GormFirmRepository) FindByName(name string) (*models.Firm, error) {
	var firm models.Firm
	if err := r.db.Where("name = ?", name).First(&firm).Error; err != nil {
		return nil, err
	}
	return &firm, nil
}
