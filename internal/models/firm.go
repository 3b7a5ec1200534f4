package models

type Firm struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Name     string `gorm:"type:varchar(64);uniqueIndex" json:"name"`
	Logo     string `gorm:"type:varchar(20);not null;default:'default.jpg'" json:"logo"`
	Content  string `gorm:"type:varchar(1000);uniqueIndex;not null" json:"content"`
	Location string `gorm:"type:varchar(64);not null" json:"location"`

	// Relations
	Products []Product `gorm:"foreignKey:FirmProducer" json:"products,omitempty"`
}
