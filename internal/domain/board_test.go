package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
)

func TestNewBoard(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("valid board", func(t *testing.T) {
		t.Parallel()

		board, err := domain.NewBoard(ownerID, "Sprint 12")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, board.ID)
		assert.Equal(t, "Sprint 12", board.Name)
		assert.Equal(t, ownerID, board.OwnerID)
		assert.False(t, board.CreatedAt.IsZero())
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		board, err := domain.NewBoard(ownerID, "")
		assert.ErrorIs(t, err, domain.ErrEmptyBoardName)
		assert.Nil(t, board)
	})

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()

		board, err := domain.NewBoard(uuid.Nil, "Sprint 12")
		assert.ErrorIs(t, err, domain.ErrEmptyBoardOwnerID)
		assert.Nil(t, board)
	})
}

func TestBoard_IsOwnedBy(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	board, err := domain.NewBoard(ownerID, "Roadmap")
	require.NoError(t, err)

	assert.True(t, board.IsOwnedBy(ownerID))
	assert.False(t, board.IsOwnedBy(uuid.New()))
}

func TestNewBoardMember(t *testing.T) {
	t.Parallel()

	boardID := uuid.New()
	userID := uuid.New()

	t.Run("valid membership", func(t *testing.T) {
		t.Parallel()

		member, err := domain.NewBoardMember(boardID, userID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, member.ID)
		assert.Equal(t, boardID, member.BoardID)
		assert.Equal(t, userID, member.UserID)
	})

	t.Run("missing board", func(t *testing.T) {
		t.Parallel()

		member, err := domain.NewBoardMember(uuid.Nil, userID)
		assert.ErrorIs(t, err, domain.ErrEmptyBoardID)
		assert.Nil(t, member)
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()

		member, err := domain.NewBoardMember(boardID, uuid.Nil)
		assert.ErrorIs(t, err, domain.ErrEmptyMemberUserID)
		assert.Nil(t, member)
	})
}
