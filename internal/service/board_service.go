package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/events"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// BoardService provides board and membership operations, enforcing the
// ownership rules that gate every board mutation.
type BoardService struct {
	db         *sql.DB
	boardStore store.BoardStore
	userStore  store.UserStore
	taskStore  store.TaskStore
	emitter    events.Emitter
	logger     *slog.Logger
}

// NewBoardService creates a new BoardService. The *sql.DB is needed so
// board creation can write the board and the owner's membership row in a
// single transaction.
func NewBoardService(
	db *sql.DB,
	boardStore store.BoardStore,
	userStore store.UserStore,
	taskStore store.TaskStore,
	emitter events.Emitter,
	logger *slog.Logger,
) (*BoardService, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if boardStore == nil {
		return nil, fmt.Errorf("boardStore cannot be nil")
	}
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if taskStore == nil {
		return nil, fmt.Errorf("taskStore cannot be nil")
	}
	if emitter == nil {
		return nil, fmt.Errorf("emitter cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BoardService{
		db:         db,
		boardStore: boardStore,
		userStore:  userStore,
		taskStore:  taskStore,
		emitter:    emitter,
		logger:     logger.With(slog.String("component", "board_service")),
	}, nil
}

// CreateBoard creates a board owned by the given user and grants the owner
// a membership row in the same transaction. Emits BOARD_CREATED.
// Returns store.ErrUserNotFound if the owner does not exist.
func (s *BoardService) CreateBoard(
	ctx context.Context,
	ownerID uuid.UUID,
	name string,
) (*domain.Board, error) {
	if _, err := s.userStore.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	board, err := domain.NewBoard(ownerID, name)
	if err != nil {
		return nil, err
	}

	member, err := domain.NewBoardMember(board.ID, ownerID)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		boards := s.boardStore.WithTx(tx)
		if err := boards.Create(ctx, board); err != nil {
			return err
		}
		return boards.AddMember(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, events.New(events.TypeBoardCreated, map[string]any{
		"id":      board.ID,
		"name":    board.Name,
		"ownerId": board.OwnerID,
	}))

	return board, nil
}

// UpdateBoardName renames a board. Only the owner may rename.
// Emits BOARD_UPDATED.
func (s *BoardService) UpdateBoardName(
	ctx context.Context,
	boardID, callerID uuid.UUID,
	newName string,
) (*domain.Board, error) {
	board, err := s.boardStore.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !board.IsOwnedBy(callerID) {
		return nil, fmt.Errorf("%w: only the board owner can rename the board", ErrForbidden)
	}

	if newName == "" {
		return nil, domain.ErrEmptyBoardName
	}

	if err := s.boardStore.UpdateName(ctx, boardID, newName); err != nil {
		return nil, err
	}
	board.Name = newName

	s.emit(ctx, events.New(events.TypeBoardUpdated, map[string]any{
		"id":   board.ID,
		"name": board.Name,
	}))

	return board, nil
}

// DeleteBoard removes a board along with its members, tasks, and comments.
// Only the owner may delete. Emits BOARD_DELETED.
func (s *BoardService) DeleteBoard(ctx context.Context, boardID, callerID uuid.UUID) error {
	board, err := s.boardStore.GetByID(ctx, boardID)
	if err != nil {
		return err
	}
	if !board.IsOwnedBy(callerID) {
		return fmt.Errorf("%w: only the board owner can delete the board", ErrForbidden)
	}

	if err := s.boardStore.Delete(ctx, boardID); err != nil {
		return err
	}

	s.emit(ctx, events.New(events.TypeBoardDeleted, map[string]any{
		"id": board.ID,
	}))

	return nil
}

// AddMember grants the given user membership on the board. Only the owner
// may add members. Returns store.ErrMembershipExists if the user is
// already a member and store.ErrUserNotFound if the user does not exist.
func (s *BoardService) AddMember(
	ctx context.Context,
	boardID, callerID, memberID uuid.UUID,
) (*domain.BoardMember, error) {
	board, err := s.boardStore.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if !board.IsOwnedBy(callerID) {
		return nil, fmt.Errorf("%w: only the board owner can add members", ErrForbidden)
	}

	if _, err := s.userStore.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	member, err := domain.NewBoardMember(boardID, memberID)
	if err != nil {
		return nil, err
	}
	if err := s.boardStore.AddMember(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// RemoveMember revokes the given user's membership. Only the owner may
// remove members. Removing a user who is not a member is a no-op; unlike
// AddMember there is no existence check on the membership row.
func (s *BoardService) RemoveMember(ctx context.Context, boardID, callerID, memberID uuid.UUID) error {
	board, err := s.boardStore.GetByID(ctx, boardID)
	if err != nil {
		return err
	}
	if !board.IsOwnedBy(callerID) {
		return fmt.Errorf("%w: only the board owner can remove members", ErrForbidden)
	}

	return s.boardStore.RemoveMember(ctx, boardID, memberID)
}

// ListBoardsForUser returns the union of boards the user owns and boards
// where the user holds a membership row.
func (s *BoardService) ListBoardsForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Board, error) {
	return s.boardStore.ListForUser(ctx, userID)
}

// ListTasksForBoard returns the board's tasks.
// Returns store.ErrBoardNotFound if the board does not exist.
func (s *BoardService) ListTasksForBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.Task, error) {
	if _, err := s.boardStore.GetByID(ctx, boardID); err != nil {
		return nil, err
	}
	return s.taskStore.ListForBoard(ctx, boardID)
}

// ListMembersForBoard returns the board's members in insertion order.
// Returns store.ErrBoardNotFound if the board does not exist.
func (s *BoardService) ListMembersForBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.User, error) {
	if _, err := s.boardStore.GetByID(ctx, boardID); err != nil {
		return nil, err
	}
	return s.boardStore.ListMembers(ctx, boardID)
}

// emit publishes an event, logging rather than failing on error: broadcast
// delivery is best-effort and never affects the outcome of a mutation.
func (s *BoardService) emit(ctx context.Context, event *events.Event) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	if err := s.emitter.Emit(ctx, event); err != nil {
		log.Warn("failed to emit event",
			slog.String("error", err.Error()),
			slog.String("event_type", event.Type))
	}
}
