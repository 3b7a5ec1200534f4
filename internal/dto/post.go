package dto

import (
	"time"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
)

// PostDTO represents a post in page payloads
type PostDTO struct {
	ID         uint64      `json:"id"`
	Title      string      `json:"title"`
	DatePosted time.Time   `json:"date_posted"`
	Content    string      `json:"content"`
	ProductID  *uint64     `json:"product_id,omitempty"`
	UserID     uint64      `json:"user_id"`
	Author     *UserDTO    `json:"author,omitempty"`
	Product    *ProductDTO `json:"product,omitempty"`
}

// ToPostDTO converts a Post model to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	dto := PostDTO{
		ID:         post.ID,
		Title:      post.Title,
		DatePosted: post.DatePosted,
		Content:    post.Content,
		ProductID:  post.ProductID,
		UserID:     post.UserID,
	}

	// Include author if preloaded
	if post.Author.ID != 0 {
		author := ToUserDTO(post.Author)
		dto.Author = &author
	}

	if post.Product != nil && post.Product.ID != 0 {
		product := ToProductDTO(*post.Product)
		dto.Product = &product
	}

	return dto
}

// ToPostDTOs converts a slice of posts
func ToPostDTOs(posts []models.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, post := range posts {
		dtos[i] = ToPostDTO(post)
	}
	return dtos
}
