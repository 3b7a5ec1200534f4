package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResetToken_RoundTrip(t *testing.T) {
	svc := NewResetTokenService("signing-key", 30*time.Minute)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestResetToken_Expired(t *testing.T) {
	svc := NewResetTokenService("signing-key", -time.Minute)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetToken_Tampered(t *testing.T) {
	svc := NewResetTokenService("signing-key", 30*time.Minute)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token + "x")
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetToken_WrongKey(t *testing.T) {
	issuer := NewResetTokenService("signing-key", 30*time.Minute)
	verifier := NewResetTokenService("other-key", 30*time.Minute)

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetToken_Malformed(t *testing.T) {
	svc := NewResetTokenService("signing-key", 30*time.Minute)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		require.ErrorIs(t, err, ErrInvalidResetToken)
	}
}
