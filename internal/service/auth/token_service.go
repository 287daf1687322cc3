package auth

import (
	"context"
	"time"
)

// TokenService defines operations for issuing and validating the bearer
// tokens that establish caller identity. Tokens carry the username as
// subject; there is no refresh mechanism.
type TokenService interface {
	// Generate creates a signed bearer token with subject=username,
	// issued-at=now, and expiry=now+lifetime.
	// Returns the token string or an error if signing fails.
	Generate(ctx context.Context, username string) (string, error)

	// Subject validates the token and extracts its subject username.
	// Returns ErrExpiredToken past expiry, or ErrInvalidToken if the
	// signature is invalid or the payload malformed.
	Subject(ctx context.Context, tokenString string) (string, error)

	// Claims validates the token and returns its full claims.
	Claims(ctx context.Context, tokenString string) (*Claims, error)

	// Valid reports whether the token has a valid signature and has not
	// expired. Any parse or verification error yields false (fails
	// closed; the specific error is swallowed).
	Valid(ctx context.Context, tokenString string) bool
}

// Claims represents the claims carried by a bearer token.
type Claims struct {
	// Subject is the username the token was issued for.
	Subject string `json:"sub,omitempty"`

	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
}
