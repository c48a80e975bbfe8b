package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yukikurage/task-manager-api/internal/config"
)

// Principal identifies the authenticated caller.
type Principal struct {
	UserID uint64
	Email  string
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	GenerateToken(ctx context.Context, principal Principal) (string, error)
	ValidateToken(ctx context.Context, token string) (*Principal, error)
}

type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// HMACTokenService signs tokens with HS256.
type HMACTokenService struct {
	signingKey []byte
	lifetime   time.Duration
	clockSkew  time.Duration
	now        func() time.Time
}

var _ TokenService = (*HMACTokenService)(nil)

// NewTokenService creates an HS256 token service from the auth configuration.
func NewTokenService(cfg config.AuthConfig) (*HMACTokenService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	return &HMACTokenService{
		signingKey: []byte(cfg.JWTSecret),
		lifetime:   cfg.TokenLifetime,
		clockSkew:  time.Minute,
		now:        time.Now,
	}, nil
}

// GenerateToken returns a signed token whose subject is the principal's e-mail.
func (s *HMACTokenService) GenerateToken(_ context.Context, principal Principal) (string, error) {
	now := s.now()
	claims := jwtClaims{
		UserID: strconv.FormatUint(principal.UserID, 10),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature and expiry and returns the principal.
func (s *HMACTokenService) ValidateToken(_ context.Context, tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Principal{UserID: userID, Email: claims.Subject}, nil
}
