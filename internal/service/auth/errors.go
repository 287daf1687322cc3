package auth

import "errors"

// Sentinel errors for bearer token validation. The API layer maps all of
// these to HTTP 401.
var (
	// ErrInvalidToken is returned when the token is malformed or its
	// signature does not verify against the signing key.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken is returned when the token's exp claim is in the past.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid is returned when the nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken is returned when a token was expected but absent.
	ErrMissingToken = errors.New("authentication token is missing")
)
