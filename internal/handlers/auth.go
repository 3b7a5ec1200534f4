package handlers

import (
	"errors"
	"net/http"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/constants"
	apierrors "github.com/Rosario-Gerratana/FollowTheFood1/internal/errors"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/middleware"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/services"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/utils"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// loginFailedNotice is deliberately the same for unknown emails and wrong
// passwords so responses cannot be used to enumerate accounts.
const loginFailedNotice = "Login Unsuccessful. Please check email and password"

// AuthHandler coordinates registration and session handlers.
type AuthHandler struct {
	authService *services.AuthService
	cookieOpts  sessions.Options
}

// NewAuthHandler creates a new AuthHandler. cookieOpts must be the same
// options the session store was configured with, so cookie attributes survive
// when a handler overrides the lifetime.
func NewAuthHandler(authService *services.AuthService, cookieOpts sessions.Options) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieOpts:  cookieOpts,
	}
}

// ShowRegister renders the registration page, or sends authenticated users home.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	renderPage(c, http.StatusOK, gin.H{"title": "Register"})
}

// Register creates a new account from the registration form.
func (h *AuthHandler) Register(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	type RegisterForm struct {
		Username        string `form:"username" binding:"required,min=2,max=20"`
		Email           string `form:"email" binding:"required,email"`
		Password        string `form:"password" binding:"required"`
		ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
	}

	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.ValidationFailed(c, formErrors(err))
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	utils.Flash(c, "success", "Your account has been created! You are now able to log in")
	c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin renders the login page, or sends authenticated users home.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	renderPage(c, http.StatusOK, gin.H{"title": "Login"})
}

// Login verifies credentials and initializes the session. A valid next query
// parameter pointing at a local path is honoured after login.
func (h *AuthHandler) Login(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	type LoginForm struct {
		Email    string `form:"email" binding:"required,email"`
		Password string `form:"password" binding:"required"`
		Remember bool   `form:"remember"`
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.ValidationFailed(c, formErrors(err))
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Flash(c, "message", loginFailedNotice)
			apierrors.Unauthorized(c, loginFailedNotice)
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if form.Remember {
		// Only the lifetime changes; Secure/SameSite stay as configured.
		opts := h.cookieOpts
		opts.MaxAge = constants.RememberMaxAge
		session.Options(opts)
	}
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	if next, ok := safeNextPath(c.Query("next")); ok {
		c.Redirect(http.StatusSeeOther, next)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout removes the session unconditionally and redirects home.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	opts := h.cookieOpts
	opts.MaxAge = -1
	session.Options(opts)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.ValidationFailed(c, map[string]string{"password": services.ErrPasswordTooShort.Error()})
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.ValidationFailed(c, map[string]string{"username": services.ErrUsernameTaken.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.ValidationFailed(c, map[string]string{"email": services.ErrEmailTaken.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
