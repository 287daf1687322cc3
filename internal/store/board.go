package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// BoardStore defines the interface for board and membership persistence.
type BoardStore interface {
	// Create saves a new board to the store.
	Create(ctx context.Context, board *domain.Board) error

	// GetByID retrieves a board by its unique ID.
	// Returns ErrBoardNotFound if the board does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)

	// UpdateName changes the board's display name.
	// Returns ErrBoardNotFound if the board does not exist.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error

	// Delete removes a board. Members, tasks, and task comments are
	// removed by ON DELETE CASCADE within the same statement.
	// Returns ErrBoardNotFound if the board does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListForUser returns the union of boards owned by the user and boards
	// where the user holds a membership row, de-duplicated by board ID.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)

	// AddMember inserts a membership row.
	// Returns ErrMembershipExists if the (board, user) pair already exists.
	AddMember(ctx context.Context, member *domain.BoardMember) error

	// RemoveMember deletes the membership row for the given (board, user)
	// pair. Removing an absent membership is a no-op, mirroring the
	// asymmetry with AddMember.
	RemoveMember(ctx context.Context, boardID, userID uuid.UUID) error

	// IsMember reports whether a membership row exists for the pair.
	// Ownership is not consulted here; callers that want the owner to
	// count as a member check Board.IsOwnedBy first.
	IsMember(ctx context.Context, boardID, userID uuid.UUID) (bool, error)

	// ListMembers returns the users holding a membership row on the board,
	// in insertion order.
	ListMembers(ctx context.Context, boardID uuid.UUID) ([]*domain.User, error)

	// WithTx returns a new BoardStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) BoardStore
}
