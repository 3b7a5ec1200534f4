package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidResetToken covers every way a reset token can fail verification:
// bad signature, malformed payload, expiry. Callers never see the distinction.
var ErrInvalidResetToken = errors.New("invalid or expired reset token")

// ResetTokenService issues and verifies signed, time-limited password-reset
// tokens carrying a user id.
type ResetTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewResetTokenService creates a ResetTokenService with the given signing
// secret and token lifetime.
func NewResetTokenService(secret string, ttl time.Duration) *ResetTokenService {
	return &ResetTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed token for the given user id, expiring after the
// configured TTL.
func (s *ResetTokenService) Issue(userID uint64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates signature and expiry and returns the embedded user id.
// Any failure maps to ErrInvalidResetToken.
func (s *ResetTokenService) Verify(tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidResetToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidResetToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidResetToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidResetToken
	}

	return userID, nil
}
