package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/task-manager-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokenService(t *testing.T) *HMACTokenService {
	t.Helper()
	svc, err := NewTokenService(config.AuthConfig{JWTSecret: testSecret, TokenLifetime: time.Hour})
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	_, err := NewTokenService(config.AuthConfig{JWTSecret: "short", TokenLifetime: time.Hour})
	assert.Error(t, err)
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, Principal{UserID: 42, Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(token, "."))

	principal, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), principal.UserID)
	assert.Equal(t, "jane@example.com", principal.Email)
}

func TestTokenService_Expired(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	issued := time.Now().Add(-3 * time.Hour)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateToken(ctx, Principal{UserID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	other, err := NewTokenService(config.AuthConfig{
		JWTSecret:     strings.Repeat("x", 32),
		TokenLifetime: time.Hour,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(ctx, Principal{UserID: 1, Email: "a@example.com"})
	require.NoError(t, err)

	_, err = newTestTokenService(t).ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MissingAndMalformed(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	_, err := svc.ValidateToken(ctx, "")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = svc.ValidateToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("qwerty")
	require.NoError(t, err)
	assert.NotEqual(t, "qwerty", digest)

	assert.NoError(t, hasher.Compare(digest, "qwerty"))
	assert.Error(t, hasher.Compare(digest, "wrong"))
}
