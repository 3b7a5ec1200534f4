package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rosario-Gerratana/FollowTheFood1/internal/constants"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/models"
	"github.com/Rosario-Gerratana/FollowTheFood1/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already taken")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
)

// AuthService handles registration, login and profile business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user with a hashed password. Username and email are
// pre-checked so duplicates surface as field errors instead of a constraint
// violation from the store.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if err := s.checkUsernameAvailable(username, 0); err != nil {
		return nil, err
	}
	if err := s.checkEmailAvailable(input.Email, 0); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        input.Email,
		ImageFile:    models.DefaultImageFile,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, ErrFailedToCreateUser
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user. An unknown
// email and a wrong password both map to ErrInvalidCredentials so the outward
// notice cannot be used to enumerate accounts.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateAccountInput represents the editable profile fields. ImageFile is the
// already-stored avatar filename; empty keeps the current one.
type UpdateAccountInput struct {
	Username  string
	Email     string
	ImageFile string
}

// UpdateAccount updates username, email and optionally the avatar filename.
func (s *AuthService) UpdateAccount(userID uint64, input UpdateAccountInput) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username != user.Username {
		if err := s.checkUsernameAvailable(username, userID); err != nil {
			return nil, err
		}
	}
	if input.Email != user.Email {
		if err := s.checkEmailAvailable(input.Email, userID); err != nil {
			return nil, err
		}
	}

	user.Username = username
	user.Email = input.Email
	if input.ImageFile != "" {
		user.ImageFile = input.ImageFile
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return user, nil
}

// SetPassword replaces the stored password hash for a user.
func (s *AuthService) SetPassword(userID uint64, password string) error {
	if len(password) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	user.PasswordHash = string(hashedPassword)
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *AuthService) checkUsernameAvailable(username string, selfID uint64) error {
	existing, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check username: %w", err)
	}
	if existing.ID != selfID {
		return ErrUsernameTaken
	}
	return nil
}

func (s *AuthService) checkEmailAvailable(email string, selfID uint64) error {
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}
