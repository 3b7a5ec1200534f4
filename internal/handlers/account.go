package handlers

import (
	"errors"
	"net/http"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/dto"
	apierrors "github.com/Rosario-Gerratana/FollowTheFood1/internal/errors"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/middleware"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/services"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/storage"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/utils"
	"github.com/gin-gonic/gin"
)

// AccountHandler coordinates the profile page.
type AccountHandler struct {
	authService *services.AuthService
	postService *services.PostService
	pictures    *storage.PictureStore
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authService *services.AuthService, postService *services.PostService, pictures *storage.PictureStore) *AccountHandler {
	return &AccountHandler{
		authService: authService,
		postService: postService,
		pictures:    pictures,
	}
}

// Show renders the account page with the profile prefill and the post feed.
func (h *AccountHandler) Show(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	posts, err := h.postService.ListPosts()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch posts")
		return
	}

	renderPage(c, http.StatusOK, gin.H{
		"title":      "Account",
		"user":       dto.ToUserDTO(*user),
		"image_file": "/static/profile_pics/" + user.ImageFile,
		"posts":      dto.ToPostDTOs(posts),
	})
}

// Update changes username/email and optionally replaces the profile picture.
func (h *AccountHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type AccountForm struct {
		Username string `form:"username" binding:"required,min=2,max=20"`
		Email    string `form:"email" binding:"required,email"`
	}

	var form AccountForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.ValidationFailed(c, formErrors(err))
		return
	}

	var imageFile string
	if fileHeader, err := c.FormFile("picture"); err == nil && fileHeader != nil {
		imageFile, err = h.pictures.SaveProfilePicture(fileHeader)
		if err != nil {
			if errors.Is(err, storage.ErrImageProcessing) {
				apierrors.UnprocessableImage(c, "")
				return
			}
			apierrors.InternalError(c, "Failed to store picture")
			return
		}
	}

	_, err := h.authService.UpdateAccount(userID, services.UpdateAccountInput{
		Username:  form.Username,
		Email:     form.Email,
		ImageFile: imageFile,
	})
	if err != nil {
		// The picture was already written; do not leave it orphaned.
		if imageFile != "" {
			_ = h.pictures.Remove(imageFile)
		}
		respondAuthError(c, err)
		return
	}

	utils.Flash(c, "success", "Your account has been updated!")
	c.Redirect(http.StatusSeeOther, "/account")
}
