package models

type Product struct {
	ID                uint64 `gorm:"primarykey" json:"id"`
	Type              string `gorm:"type:varchar(64);not null" json:"type"`
	Photo             string `gorm:"type:varchar(20);not null;default:'default.jpg'" json:"photo"`
	PointAvailability string `gorm:"type:varchar(100)" json:"point_availability"`
	FirmProducer      uint64 `gorm:"not null" json:"firm_producer"`

	// Relations
	Producer Firm   `gorm:"foreignKey:FirmProducer" json:"producer,omitempty"`
	Posts    []Post `gorm:"foreignKey:ProductID" json:"posts,omitempty"`
}
