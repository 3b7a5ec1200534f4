package models

import "time"

type Post struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	Title      string    `gorm:"type:varchar(100);not null" json:"title"`
	DatePosted time.Time `gorm:"not null;autoCreateTime" json:"date_posted"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	ProductID  *uint64   `json:"product_id"`
	UserID     uint64    `gorm:"not null" json:"user_id"`

	// Relations
	Author  User     `gorm:"foreignKey:UserID" json:"author,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
