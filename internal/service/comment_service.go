package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// CommentService provides the append-only comment operations.
type CommentService struct {
	commentStore store.CommentStore
	taskStore    store.TaskStore
	boardStore   store.BoardStore
	userStore    store.UserStore
	emitter      events.Emitter
	logger       *slog.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentStore store.CommentStore,
	taskStore store.TaskStore,
	boardStore store.BoardStore,
	userStore store.UserStore,
	emitter events.Emitter,
	logger *slog.Logger,
) (*CommentService, error) {
	if commentStore == nil {
		return nil, fmt.Errorf("commentStore cannot be nil")
	}
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if boardStore == nil {
		return nil, fmt.Errorf("boardStore cannot be nil")
	}
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if emitter == nil {
		return nil, fmt.Errorf("emitter cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CommentService{
		commentStore: commentStore,
		taskStore:    taskStore,
		boardStore:   boardStore,
		userStore:    userStore,
		emitter:      emitter,
		logger:       logger.With(slog.String("component", "comment_service")),
	}, nil
}

// AddComment posts a comment on a task. The caller must be a member of the
// task's board (the owner counts). The creation timestamp is assigned by
// the server. Emits COMMENT_CREATED.
func (s *CommentService) AddComment(
	ctx context.Context,
	taskID, userID uuid.UUID,
	content string,
) (*store.CommentWithAuthor, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	board, err := s.boardStore.GetByID(ctx, task.BoardID)
	if err != nil {
		return nil, err
	}

	if !board.IsOwnedBy(userID) {
		member, err := s.boardStore.IsMember(ctx, board.ID, userID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, fmt.Errorf("%w: user is not a member of the board", ErrForbidden)
		}
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment, err := domain.NewComment(taskID, userID, content)
	if err != nil {
		return nil, err
	}
	if err := s.commentStore.Create(ctx, comment); err != nil {
		return nil, err
	}

	result := &store.CommentWithAuthor{
		Comment:  *comment,
		Username: user.Username,
	}

	s.emit(ctx, events.New(events.TypeCommentCreated, map[string]any{
		"id":        comment.ID,
		"taskId":    comment.TaskID,
		"userId":    comment.UserID,
		"username":  user.Username,
		"content":   comment.Content,
		"createdAt": comment.CreatedAt,
	}))

	return result, nil
}

// ListCommentsForTask returns the task's comments in non-decreasing
// creation-timestamp order.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *CommentService) ListCommentsForTask(
	ctx context.Context,
	taskID uuid.UUID,
) ([]*store.CommentWithAuthor, error) {
	if _, err := s.taskStore.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return s.commentStore.ListForTask(ctx, taskID)
}

// emit publishes an event, logging rather than failing on error.
func (s *CommentService) emit(ctx context.Context, event *events.Event) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := s.emitter.Emit(ctx, event); err != nil {
		log.Warn("failed to emit event",
			slog.String("error", err.Error()),
			slog.String("event_type", event.Type))
	}
}
