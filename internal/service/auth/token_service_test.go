package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

const testSecret = "test-secret-thirty-two-characters!!"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := auth.NewTestTokenService(testSecret, 24*time.Hour, fixedClock(now))

	token, err := svc.Generate(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Subject(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	claims, err := svc.Claims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.True(t, claims.IssuedAt.Equal(now))
	assert.True(t, claims.ExpiresAt.Equal(now.Add(24*time.Hour)))
}

func TestTokenService_Expiry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 24 * time.Hour

	issuer := auth.NewTestTokenService(testSecret, lifetime, fixedClock(issued))
	token, err := issuer.Generate(ctx, "alice")
	require.NoError(t, err)

	cases := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"just before expiry", issued.Add(lifetime - time.Second), nil},
		{"just after expiry", issued.Add(lifetime + time.Second), auth.ErrExpiredToken},
		{"long after expiry", issued.Add(30 * 24 * time.Hour), auth.ErrExpiredToken},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			verifier := auth.NewTestTokenService(testSecret, lifetime, fixedClock(tc.now))

			_, err := verifier.Subject(ctx, token)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, verifier.Valid(ctx, token))
			} else {
				assert.NoError(t, err)
				assert.True(t, verifier.Valid(ctx, token))
			}
		})
	}
}

func TestTokenService_InvalidTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := auth.NewTestTokenService(testSecret, 24*time.Hour, fixedClock(now))

	token, err := svc.Generate(ctx, "alice")
	require.NoError(t, err)

	t.Run("wrong signing key", func(t *testing.T) {
		t.Parallel()
		other := auth.NewTestTokenService(
			"another-secret-thirty-two-chars-long!",
			24*time.Hour,
			fixedClock(now),
		)

		_, err := other.Subject(ctx, token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		t.Parallel()
		tampered := token[:len(token)-2] + "xx"

		_, err := svc.Subject(ctx, tampered)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage input", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Subject(ctx, "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.False(t, svc.Valid(ctx, "not-a-token"))
	})

	t.Run("empty subject rejected", func(t *testing.T) {
		t.Parallel()
		empty, err := svc.Generate(ctx, "")
		require.NoError(t, err)

		_, err = svc.Subject(ctx, empty)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestNewTokenService_SecretLength(t *testing.T) {
	t.Parallel()

	_, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 60,
	})
	assert.Error(t, err)

	svc, err := auth.NewTokenService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}
