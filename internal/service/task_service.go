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

// TaskService provides task operations, enforcing the per-operation
// authorization sets: creation requires board membership, content edits
// and deletion are limited to the creator or board owner, and status
// changes additionally admit the current assignee.
type TaskService struct {
	taskStore  store.TaskStore
	boardStore store.BoardStore
	userStore  store.UserStore
	emitter    events.Emitter
	logger     *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskStore store.TaskStore,
	boardStore store.BoardStore,
	userStore store.UserStore,
	emitter events.Emitter,
	logger *slog.Logger,
) (*TaskService, error) {
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

	return &TaskService{
		taskStore:  taskStore,
		boardStore: boardStore,
		userStore:  userStore,
		emitter:    emitter,
		logger:     logger.With(slog.String("component", "task_service")),
	}, nil
}

// CreateTask creates a task on the given board. The creator must be a
// board member (the owner counts); an assignee, when given, must exist and
// be a board member. The status string is stored as supplied, defaulting
// to NOT_STARTED when empty. Emits TASK_CREATED.
func (s *TaskService) CreateTask(
	ctx context.Context,
	boardID, creatorID uuid.UUID,
	content string,
	assignedMemberID *uuid.UUID,
	status string,
) (*domain.Task, error) {
	board, err := s.boardStore.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	member, err := s.isBoardMember(ctx, board, creatorID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: user is not a member of the board", ErrForbidden)
	}

	if _, err := s.userStore.GetByID(ctx, creatorID); err != nil {
		return nil, err
	}

	if assignedMemberID != nil {
		assigneeMember, err := s.isBoardMember(ctx, board, *assignedMemberID)
		if err != nil {
			return nil, err
		}
		if !assigneeMember {
			return nil, fmt.Errorf("%w: assigned member is not a member of the board", ErrForbidden)
		}
		if _, err := s.userStore.GetByID(ctx, *assignedMemberID); err != nil {
			return nil, err
		}
	}

	task, err := domain.NewTask(boardID, creatorID, content, assignedMemberID, status)
	if err != nil {
		return nil, err
	}
	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	s.emitSnapshot(ctx, events.TypeTaskCreated, task)

	return task, nil
}

// UpdateTaskContent replaces the task's content. Only the creator or the
// board owner may edit content. Emits TASK_UPDATED.
func (s *TaskService) UpdateTaskContent(
	ctx context.Context,
	taskID, callerID uuid.UUID,
	newContent string,
) (*domain.Task, error) {
	task, board, err := s.taskWithBoard(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.CreatorID != callerID && !board.IsOwnedBy(callerID) {
		return nil, fmt.Errorf(
			"%w: only the task creator or board owner can update task content",
			ErrForbidden,
		)
	}

	if newContent == "" {
		return nil, domain.ErrEmptyTaskContent
	}

	if err := s.taskStore.UpdateContent(ctx, taskID, newContent); err != nil {
		return nil, err
	}
	task.Content = newContent

	s.emitSnapshot(ctx, events.TypeTaskUpdated, task)

	return task, nil
}

// UpdateTaskStatus replaces the task's status. The current assignee, the
// creator, and the board owner may change status. The status value is any
// caller-supplied string; no enumerated-value check is applied.
// Emits TASK_UPDATED.
func (s *TaskService) UpdateTaskStatus(
	ctx context.Context,
	taskID, callerID uuid.UUID,
	status string,
) (*domain.Task, error) {
	task, board, err := s.taskWithBoard(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.IsAssignedTo(callerID) && task.CreatorID != callerID && !board.IsOwnedBy(callerID) {
		return nil, fmt.Errorf("%w: not allowed to update task status", ErrForbidden)
	}

	if err := s.taskStore.UpdateStatus(ctx, taskID, status); err != nil {
		return nil, err
	}
	task.Status = status

	s.emitSnapshot(ctx, events.TypeTaskUpdated, task)

	return task, nil
}

// UpdateTaskAssignee reassigns the task, or clears the assignment when
// newAssigneeID is nil. Only the creator or board owner may reassign, and
// a new assignee must exist and be a board member, the same checks
// CreateTask applies. Emits TASK_UPDATED.
func (s *TaskService) UpdateTaskAssignee(
	ctx context.Context,
	taskID, callerID uuid.UUID,
	newAssigneeID *uuid.UUID,
) (*domain.Task, error) {
	task, board, err := s.taskWithBoard(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.CreatorID != callerID && !board.IsOwnedBy(callerID) {
		return nil, fmt.Errorf(
			"%w: only the task creator or board owner can reassign the task",
			ErrForbidden,
		)
	}

	if newAssigneeID != nil {
		member, err := s.isBoardMember(ctx, board, *newAssigneeID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, fmt.Errorf("%w: assigned member is not a member of the board", ErrForbidden)
		}
		if _, err := s.userStore.GetByID(ctx, *newAssigneeID); err != nil {
			return nil, err
		}
	}

	if err := s.taskStore.UpdateAssignee(ctx, taskID, newAssigneeID); err != nil {
		return nil, err
	}
	task.AssignedMemberID = newAssigneeID

	s.emitSnapshot(ctx, events.TypeTaskUpdated, task)

	return task, nil
}

// DeleteTask removes a task and its comments. Only the creator or board
// owner may delete. Emits TASK_DELETED.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, callerID uuid.UUID) error {
	task, board, err := s.taskWithBoard(ctx, taskID)
	if err != nil {
		return err
	}

	if task.CreatorID != callerID && !board.IsOwnedBy(callerID) {
		return fmt.Errorf(
			"%w: only the task creator or board owner can delete the task",
			ErrForbidden,
		)
	}

	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		return err
	}

	s.emit(ctx, events.New(events.TypeTaskDeleted, map[string]any{
		"id":      task.ID,
		"boardId": task.BoardID,
	}))

	return nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, taskID)
}

// taskWithBoard loads a task and its board, which every authorization
// check needs for the owner rule.
func (s *TaskService) taskWithBoard(
	ctx context.Context,
	taskID uuid.UUID,
) (*domain.Task, *domain.Board, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	board, err := s.boardStore.GetByID(ctx, task.BoardID)
	if err != nil {
		return nil, nil, err
	}
	return task, board, nil
}

// isBoardMember reports whether the user may act on the board: owners
// always count as members, everyone else needs a membership row.
func (s *TaskService) isBoardMember(
	ctx context.Context,
	board *domain.Board,
	userID uuid.UUID,
) (bool, error) {
	if board.IsOwnedBy(userID) {
		return true, nil
	}
	return s.boardStore.IsMember(ctx, board.ID, userID)
}

// emitSnapshot emits an event carrying the task's post-mutation state.
func (s *TaskService) emitSnapshot(ctx context.Context, eventType string, task *domain.Task) {
	payload := map[string]any{
		"id":        task.ID,
		"boardId":   task.BoardID,
		"content":   task.Content,
		"status":    task.Status,
		"creatorId": task.CreatorID,
	}
	if task.AssignedMemberID != nil {
		payload["assignedMemberId"] = *task.AssignedMemberID
	} else {
		payload["assignedMemberId"] = nil
	}
	s.emit(ctx, events.New(eventType, payload))
}

// emit publishes an event, logging rather than failing on error.
func (s *TaskService) emit(ctx context.Context, event *events.Event) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := s.emitter.Emit(ctx, event); err != nil {
		log.Warn("failed to emit event",
			slog.String("error", err.Error()),
			slog.String("event_type", event.Type))
	}
}
