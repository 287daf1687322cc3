package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
	"github.com/phrazzld/taskboard-api/internal/testutils"
)

func TestUserService_Register(t *testing.T) {
	db := testutils.GetTestDB(t)
	ctx := context.Background()

	userStore := postgres.NewPostgresUserStore(db, testLogger())
	hasher := auth.NewBcryptHasher()

	svc, err := service.NewUserService(db, userStore, hasher, testLogger())
	require.NoError(t, err)

	username := fmt.Sprintf("user-%s", uuid.New())

	user, err := svc.Register(ctx, username, "sufficiently-long")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, user.ID)
	})

	assert.Equal(t, username, user.Username)
	assert.Empty(t, user.Password, "plaintext password should be cleared")
	assert.NotEmpty(t, user.HashedPassword)
	assert.NoError(t, hasher.Compare(user.HashedPassword, "sufficiently-long"))

	// The stored row round-trips.
	stored, err := userStore.GetByUsername(ctx, username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)

	// A second registration with the same username conflicts.
	_, err = svc.Register(ctx, username, "another-password")
	assert.ErrorIs(t, err, store.ErrUsernameExists)
}
