package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service"
	"github.com/phrazzld/taskboard-api/internal/store"
)

type commentFixture struct {
	comments *mocks.MockCommentStore
	emitter  *mocks.MockEmitter
	svc      *service.CommentService

	owner    *domain.User
	member   *domain.User
	outsider *domain.User
	board    *domain.Board
	task     *domain.Task
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()

	users := mocks.NewMockUserStore()
	boards := mocks.NewMockBoardStore()
	tasks := mocks.NewMockTaskStore()
	comments := mocks.NewMockCommentStore()
	emitter := mocks.NewMockEmitter()

	boards.Users = users.Users
	users.Memberships = boards.Memberships
	comments.Users = users.Users

	owner := users.AddUser("alice")
	member := users.AddUser("bob")
	outsider := users.AddUser("carol")

	board := boards.AddBoard("sprint", owner.ID)
	require.NoError(t, boards.AddMember(context.Background(), &domain.BoardMember{
		ID:      uuid.New(),
		BoardID: board.ID,
		UserID:  member.ID,
	}))

	task := tasks.AddTask(board.ID, member.ID, "triage bug reports")

	svc, err := service.NewCommentService(comments, tasks, boards, users, emitter, testLogger())
	require.NoError(t, err)

	return &commentFixture{
		comments: comments,
		emitter:  emitter,
		svc:      svc,
		owner:    owner,
		member:   member,
		outsider: outsider,
		board:    board,
		task:     task,
	}
}

func TestCommentService_AddComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("member can comment", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		comment, err := f.svc.AddComment(ctx, f.task.ID, f.member.ID, "looks good")
		require.NoError(t, err)
		assert.Equal(t, "looks good", comment.Content)
		assert.Equal(t, f.member.Username, comment.Username)
		assert.Positive(t, comment.CreatedAt)

		last := f.emitter.LastEvent()
		require.NotNil(t, last)
		assert.Equal(t, events.TypeCommentCreated, last.Type)
		assert.Equal(t, f.member.Username, last.Payload["username"])
	})

	t.Run("owner can comment", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		_, err := f.svc.AddComment(ctx, f.task.ID, f.owner.ID, "shipping this week")
		assert.NoError(t, err)
	})

	t.Run("non-member cannot comment", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		_, err := f.svc.AddComment(ctx, f.task.ID, f.outsider.ID, "drive-by")
		assert.ErrorIs(t, err, service.ErrForbidden)
		assert.Empty(t, f.comments.Comments)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		_, err := f.svc.AddComment(ctx, f.task.ID, f.member.ID, "")
		assert.ErrorIs(t, err, domain.ErrEmptyContent)
	})

	t.Run("unknown task", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		_, err := f.svc.AddComment(ctx, uuid.New(), f.member.ID, "hello")
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestCommentService_ListCommentsForTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("comments come back oldest first", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		// Seed with descending timestamps so ordering is observable.
		for i, content := range []string{"third", "second", "first"} {
			f.comments.Comments = append(f.comments.Comments, &domain.Comment{
				ID:        uuid.New(),
				TaskID:    f.task.ID,
				UserID:    f.member.ID,
				Content:   content,
				CreatedAt: int64(100 - i),
			})
		}

		comments, err := f.svc.ListCommentsForTask(ctx, f.task.ID)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.Equal(t, "first", comments[0].Content)
		assert.Equal(t, "second", comments[1].Content)
		assert.Equal(t, "third", comments[2].Content)
	})

	t.Run("unknown task", func(t *testing.T) {
		t.Parallel()
		f := newCommentFixture(t)

		_, err := f.svc.ListCommentsForTask(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
