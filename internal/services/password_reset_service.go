package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/mail"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/repository"
	"gorm.io/gorm"
)

// PasswordResetService drives the request/confirm reset flow.
type PasswordResetService struct {
	userRepo repository.UserRepository
	tokens   *ResetTokenService
	mailer   mail.Mailer
	baseURL  string
}

// NewPasswordResetService creates a new PasswordResetService.
func NewPasswordResetService(userRepo repository.UserRepository, tokens *ResetTokenService, mailer mail.Mailer, baseURL string) *PasswordResetService {
	return &PasswordResetService{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		baseURL:  baseURL,
	}
}

// RequestReset issues a token and mails the reset link when an account with
// the given email exists. It reports success either way so the response never
// reveals whether the address is registered. The send happens off the request
// path; a delivery failure is logged, not returned.
func (s *PasswordResetService) RequestReset(email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up account: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset_password/%s", s.baseURL, token)
	body := "For reset password click the following link: " + resetURL

	go func(to string) {
		if err := s.mailer.Send(to, "Password Reset Request", body); err != nil {
			log.Printf("password reset mail to %s failed: %v", to, err)
		}
	}(user.Email)

	return nil
}

// VerifyToken resolves a reset token to its user id.
func (s *PasswordResetService) VerifyToken(token string) (uint64, error) {
	return s.tokens.Verify(token)
}
