package dto

import (
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
)

// UserDTO represents a user in page payloads
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	ImageFile string `json:"image_file"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		ImageFile: user.ImageFile,
	}
}
