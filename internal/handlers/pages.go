package handlers

import (
	"net/http"

	apierrors "github.com/Rosario-Gerratana/FollowTheFood1/internal/errors"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/utils"
	"github.com/gin-gonic/gin"
)

// PagesHandler serves the static-content pages: home and the contact form.
type PagesHandler struct{}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Home renders the landing page.
func (h *PagesHandler) Home(c *gin.Context) {
	renderPage(c, http.StatusOK, gin.H{"title": "FollowTheFood"})
}

// ShowContact renders the contact page.
func (h *PagesHandler) ShowContact(c *gin.Context) {
	renderPage(c, http.StatusOK, gin.H{"title": "Contact"})
}

// Contact validates the contact form. Nothing is persisted; a valid
// submission just flashes a confirmation and goes home.
func (h *PagesHandler) Contact(c *gin.Context) {
	type ContactForm struct {
		Name    string `form:"name" binding:"required"`
		Email   string `form:"email" binding:"required,email"`
		Subject string `form:"subject" binding:"required"`
		Message string `form:"message" binding:"required"`
	}

	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		utils.Flash(c, "message", "All fields are required.")
		apierrors.ValidationFailed(c, formErrors(err))
		return
	}

	utils.Flash(c, "success", "Form posted.")
	c.Redirect(http.StatusSeeOther, "/")
}
