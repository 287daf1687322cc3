package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

func TestUserService_ListAvailableForBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := mocks.NewMockUserStore()
	boards := mocks.NewMockBoardStore()
	users.Memberships = boards.Memberships

	owner := users.AddUser("alice")
	member := users.AddUser("bob")
	zed := users.AddUser("zed")
	ann := users.AddUser("ann")

	board := boards.AddBoard("sprint", owner.ID)
	require.NoError(t, boards.AddMember(ctx, &domain.BoardMember{
		ID:      uuid.New(),
		BoardID: board.ID,
		UserID:  member.ID,
	}))

	svc, err := service.NewUserService(unusedDB(t), users, auth.NewBcryptHasher(), testLogger())
	require.NoError(t, err)

	available, err := svc.ListAvailableForBoard(ctx, board.ID)
	require.NoError(t, err)

	// Owner and existing member are excluded; the rest come back sorted
	// by username.
	require.Len(t, available, 2)
	assert.Equal(t, ann.ID, available[0].ID)
	assert.Equal(t, zed.ID, available[1].ID)
}
