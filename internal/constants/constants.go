package constants

// Session
const (
	SessionCookieName = "followthefood_session"
	ContextKeyUserID  = "user_id"

	// RememberMaxAge is the cookie lifetime when "remember me" is checked.
	// Without it the cookie lasts for the browser session only.
	RememberMaxAge = 86400 * 30
)

// Validation limits
const (
	MinPasswordLength = 6
	MaxUsernameLength = 20
	MaxTitleLength    = 100
)

// DefaultResetTokenTTLSeconds is how long a password-reset link stays valid.
const DefaultResetTokenTTLSeconds = 1800
