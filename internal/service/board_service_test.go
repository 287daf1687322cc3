package service_test

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// testLogger discards everything below ERROR to keep test output quiet.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// unusedDB returns a lazily-opened handle for constructors that require a
// *sql.DB. Tests that never reach a transactional path never connect.
func unusedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("pgx", "postgres://localhost/unused")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type boardFixture struct {
	users   *mocks.MockUserStore
	boards  *mocks.MockBoardStore
	tasks   *mocks.MockTaskStore
	emitter *mocks.MockEmitter
	svc     *service.BoardService

	owner  *domain.User
	member *domain.User
	other  *domain.User
	board  *domain.Board
}

func newBoardFixture(t *testing.T) *boardFixture {
	t.Helper()

	users := mocks.NewMockUserStore()
	boards := mocks.NewMockBoardStore()
	tasks := mocks.NewMockTaskStore()
	emitter := mocks.NewMockEmitter()

	boards.Users = users.Users
	users.Memberships = boards.Memberships

	owner := users.AddUser("alice")
	member := users.AddUser("bob")
	other := users.AddUser("carol")

	board := boards.AddBoard("launch plan", owner.ID)
	require.NoError(t, boards.AddMember(context.Background(), &domain.BoardMember{
		ID:      uuid.New(),
		BoardID: board.ID,
		UserID:  member.ID,
	}))

	svc, err := service.NewBoardService(unusedDB(t), boards, users, tasks, emitter, testLogger())
	require.NoError(t, err)

	return &boardFixture{
		users:   users,
		boards:  boards,
		tasks:   tasks,
		emitter: emitter,
		svc:     svc,
		owner:   owner,
		member:  member,
		other:   other,
		board:   board,
	}
}

func TestBoardService_UpdateBoardName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owner can rename", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		board, err := f.svc.UpdateBoardName(ctx, f.board.ID, f.owner.ID, "renamed")
		require.NoError(t, err)
		assert.Equal(t, "renamed", board.Name)
		assert.Equal(t, "renamed", f.boards.Boards[f.board.ID].Name)

		last := f.emitter.LastEvent()
		require.NotNil(t, last)
		assert.Equal(t, events.TypeBoardUpdated, last.Type)
		assert.Equal(t, "renamed", last.Payload["name"])
	})

	t.Run("member cannot rename", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		_, err := f.svc.UpdateBoardName(ctx, f.board.ID, f.member.ID, "renamed")
		assert.ErrorIs(t, err, service.ErrForbidden)
		assert.Empty(t, f.emitter.Events)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		_, err := f.svc.UpdateBoardName(ctx, f.board.ID, f.owner.ID, "")
		assert.ErrorIs(t, err, domain.ErrEmptyBoardName)
	})

	t.Run("unknown board", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		_, err := f.svc.UpdateBoardName(ctx, uuid.New(), f.owner.ID, "renamed")
		assert.ErrorIs(t, err, store.ErrBoardNotFound)
	})
}

func TestBoardService_DeleteBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		require.NoError(t, f.svc.DeleteBoard(ctx, f.board.ID, f.owner.ID))
		assert.NotContains(t, f.boards.Boards, f.board.ID)

		last := f.emitter.LastEvent()
		require.NotNil(t, last)
		assert.Equal(t, events.TypeBoardDeleted, last.Type)
	})

	t.Run("member cannot delete", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		err := f.svc.DeleteBoard(ctx, f.board.ID, f.member.ID)
		assert.ErrorIs(t, err, service.ErrForbidden)
		assert.Contains(t, f.boards.Boards, f.board.ID)
	})
}

func TestBoardService_AddMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owner can add member", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		member, err := f.svc.AddMember(ctx, f.board.ID, f.owner.ID, f.other.ID)
		require.NoError(t, err)
		assert.Equal(t, f.other.ID, member.UserID)
		assert.True(t, f.boards.Memberships[f.board.ID][f.other.ID])
	})

	t.Run("duplicate membership conflicts", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		_, err := f.svc.AddMember(ctx, f.board.ID, f.owner.ID, f.member.ID)
		assert.ErrorIs(t, err, store.ErrMembershipExists)
	})

	t.Run("adding the owner conflicts", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		// The owner's membership row is created with the board.
		_, err := f.svc.AddMember(ctx, f.board.ID, f.owner.ID, f.owner.ID)
		assert.ErrorIs(t, err, store.ErrMembershipExists)
	})

	t.Run("non-owner cannot add", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		_, err := f.svc.AddMember(ctx, f.board.ID, f.member.ID, f.other.ID)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		_, err := f.svc.AddMember(ctx, f.board.ID, f.owner.ID, uuid.New())
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestBoardService_RemoveMember(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("owner can remove member", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		require.NoError(t, f.svc.RemoveMember(ctx, f.board.ID, f.owner.ID, f.member.ID))
		assert.False(t, f.boards.Memberships[f.board.ID][f.member.ID])
	})

	t.Run("removing a non-member is a no-op", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		assert.NoError(t, f.svc.RemoveMember(ctx, f.board.ID, f.owner.ID, f.other.ID))
	})

	t.Run("non-owner cannot remove", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		err := f.svc.RemoveMember(ctx, f.board.ID, f.member.ID, f.member.ID)
		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestBoardService_Listings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("members listed in insertion order", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		members, err := f.svc.ListMembersForBoard(ctx, f.board.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, f.owner.ID, members[0].ID)
		assert.Equal(t, f.member.ID, members[1].ID)
	})

	t.Run("boards for member include non-owned boards", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		boards, err := f.svc.ListBoardsForUser(ctx, f.member.ID)
		require.NoError(t, err)
		require.Len(t, boards, 1)
		assert.Equal(t, f.board.ID, boards[0].ID)

		boards, err = f.svc.ListBoardsForUser(ctx, f.other.ID)
		require.NoError(t, err)
		assert.Empty(t, boards)
	})

	t.Run("tasks for unknown board", func(t *testing.T) {
		t.Parallel()
		f := newBoardFixture(t)

		_, err := f.svc.ListTasksForBoard(ctx, uuid.New())
		assert.True(t, errors.Is(err, store.ErrBoardNotFound))
	})
}
