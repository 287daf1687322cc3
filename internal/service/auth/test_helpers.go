package auth

import "time"

// NewTestTokenService creates a TokenService with an injectable clock for
// testing expiry behavior. Production code should use NewTokenService.
func NewTestTokenService(
	secret string,
	lifetime time.Duration,
	timeFunc func() time.Time,
) TokenService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}
