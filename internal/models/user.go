package models

// DefaultImageFile is the placeholder avatar assigned to new accounts.
const DefaultImageFile = "default.jpg"

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Username     string `gorm:"type:varchar(20);uniqueIndex;not null" json:"username"`
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	ImageFile    string `gorm:"type:varchar(40);not null;default:'default.jpg'" json:"image_file"`
	PasswordHash string `gorm:"type:varchar(60);not null" json:"-"`

	// Relations
	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
