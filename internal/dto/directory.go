package dto

import (
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
)

// FirmDTO represents a firm in page payloads
type FirmDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Content  string `json:"content"`
	Location string `json:"location"`
}

// ProductDTO represents a product in page payloads
type ProductDTO struct {
	ID                uint64   `json:"id"`
	Type              string   `json:"type"`
	Photo             string   `json:"photo"`
	PointAvailability string   `json:"point_availability"`
	FirmProducer      uint64   `json:"firm_producer"`
	Producer          *FirmDTO `json:"producer,omitempty"`
}

// ToFirmDTO converts a Firm model to FirmDTO
func ToFirmDTO(firm models.Firm) FirmDTO {
	return FirmDTO{
		ID:       firm.ID,
		Name:     firm.Name,
		Logo:     firm.Logo,
		Content:  firm.Content,
		Location: firm.Location,
	}
}

// ToProductDTO converts a Product model to ProductDTO
func ToProductDTO(product models.Product) ProductDTO {
	dto := ProductDTO{
		ID:                product.ID,
		Type:              product.Type,
		Photo:             product.Photo,
		PointAvailability: product.PointAvailability,
		FirmProducer:      product.FirmProducer,
	}

	// Include producer if preloaded
	if product.Producer.ID != 0 {
		producer := ToFirmDTO(product.Producer)
		dto.Producer = &producer
	}

	return dto
}

// ToProductDTOs converts a slice of products
func ToProductDTOs(products []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, len(products))
	for i, product := range products {
		dtos[i] = ToProductDTO(product)
	}
	return dtos
}
