package auth

import "errors"

var (
	// ErrInvalidToken indicates the token is malformed or its signature does not match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates no bearer token was presented
	ErrMissingToken = errors.New("authentication token is missing")
)
