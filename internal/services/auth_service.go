package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/task-manager-api/internal/auth"
	"github.com/yukikurage/task-manager-api/internal/database"
	"github.com/yukikurage/task-manager-api/internal/repository"
)

// PasswordVerifier checks a plaintext password against a stored digest.
type PasswordVerifier interface {
	Compare(digest, password string) error
}

// AuthService handles authentication related business logic.
type AuthService struct {
	store    *repository.Store
	verifier PasswordVerifier
	tokens   auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *repository.Store, verifier PasswordVerifier, tokens auth.TokenService) *AuthService {
	return &AuthService{
		store:    store,
		verifier: verifier,
		tokens:   tokens,
	}
}

// Login verifies credentials and returns a signed bearer token. The username
// is the user's e-mail. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.Users.FindByEmail(ctx, username)
	if err != nil {
		if database.IsNotFound(err) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.verifier.Compare(user.PasswordDigest, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, auth.Principal{UserID: user.ID, Email: user.Email})
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
