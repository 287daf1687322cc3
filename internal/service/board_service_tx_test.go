package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/testutils"
)

// TestBoardService_CreateBoard_OwnerMembership verifies that creating a
// board writes the owner's membership row in the same transaction, so the
// owner immediately appears in member-scoped queries.
func TestBoardService_CreateBoard_OwnerMembership(t *testing.T) {
	db := testutils.GetTestDB(t)
	ctx := context.Background()
	logger := testLogger()

	userStore := postgres.NewPostgresUserStore(db, logger)
	boardStore := postgres.NewPostgresBoardStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	owner, err := domain.NewUser(fmt.Sprintf("owner-%s", uuid.New()), "board-owner-pass")
	require.NoError(t, err)
	owner.HashedPassword = "not-a-real-hash"
	require.NoError(t, userStore.Create(ctx, owner))
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, owner.ID)
	})

	svc, err := service.NewBoardService(
		db,
		boardStore,
		userStore,
		taskStore,
		mocks.NewMockEmitter(),
		logger,
	)
	require.NoError(t, err)

	board, err := svc.CreateBoard(ctx, owner.ID, "release planning")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, board.ID)
	})

	isMember, err := boardStore.IsMember(ctx, board.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, isMember, "owner should hold a membership row after creation")

	members, err := boardStore.ListMembers(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, owner.ID, members[0].ID)

	available, err := userStore.ListAvailableForBoard(ctx, board.ID)
	require.NoError(t, err)
	for _, u := range available {
		assert.NotEqual(t, owner.ID, u.ID, "owner should not be listed as available")
	}
}
