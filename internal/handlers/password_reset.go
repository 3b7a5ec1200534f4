package handlers

import (
	"net/http"

	apierrors "github.com/Rosario-Gerratana/FollowTheFood1/internal/errors"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/middleware"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/services"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/utils"
	"github.com/gin-gonic/gin"
)

// resetRequestedNotice is shown whether or not the email belongs to an
// account, so the endpoint cannot confirm address existence.
const resetRequestedNotice = "An email has been sent with instructions to reset your password."

// PasswordResetHandler coordinates the reset request/confirm flow.
type PasswordResetHandler struct {
	resetService *services.PasswordResetService
	authService  *services.AuthService
}

// NewPasswordResetHandler creates a new PasswordResetHandler.
func NewPasswordResetHandler(resetService *services.PasswordResetService, authService *services.AuthService) *PasswordResetHandler {
	return &PasswordResetHandler{
		resetService: resetService,
		authService:  authService,
	}
}

// ShowRequest renders the reset-request page.
func (h *PasswordResetHandler) ShowRequest(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	renderPage(c, http.StatusOK, gin.H{"title": "Reset Password"})
}

// Request issues a reset token and mails the link when the account exists.
func (h *PasswordResetHandler) Request(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	type ResetRequestForm struct {
		Email string `form:"email" binding:"required,email"`
	}

	var form ResetRequestForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.ValidationFailed(c, formErrors(err))
		return
	}

	if err := h.resetService.RequestReset(form.Email); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	utils.Flash(c, "info", resetRequestedNotice)
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowConfirm verifies the token and renders the new-password page.
func (h *PasswordResetHandler) ShowConfirm(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if _, err := h.resetService.VerifyToken(c.Param("token")); err != nil {
		h.redirectInvalidToken(c)
		return
	}

	renderPage(c, http.StatusOK, gin.H{
		"title": "Reset Password",
		"token": c.Param("token"),
	})
}

// Confirm sets the new password for the token's user.
func (h *PasswordResetHandler) Confirm(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	userID, err := h.resetService.VerifyToken(c.Param("token"))
	if err != nil {
		h.redirectInvalidToken(c)
		return
	}

	type ResetPasswordForm struct {
		Password        string `form:"password" binding:"required"`
		ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
	}

	var form ResetPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.ValidationFailed(c, formErrors(err))
		return
	}

	if err := h.authService.SetPassword(userID, form.Password); err != nil {
		respondAuthError(c, err)
		return
	}

	utils.Flash(c, "success", "Your password has been updated! You are now able to log in")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *PasswordResetHandler) redirectInvalidToken(c *gin.Context) {
	utils.Flash(c, "warning", "That is an invalid or expired token")
	c.Redirect(http.StatusFound, "/reset_password")
}
