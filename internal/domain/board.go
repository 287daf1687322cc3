package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Board and BoardMember
var (
	ErrEmptyBoardID      = errors.New("board ID cannot be empty")
	ErrEmptyBoardName    = errors.New("board name cannot be empty")
	ErrEmptyBoardOwnerID = errors.New("board owner ID cannot be empty")
	ErrEmptyMemberUserID = errors.New("member user ID cannot be empty")
)

// Board represents a named workspace owned by a single user. Members and
// tasks are not embedded; they are fetched through their own store methods
// so no lazily loaded object graph ever crosses a service boundary.
type Board struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBoard creates a new Board with the given name and owner.
// Returns an error if validation fails.
func NewBoard(ownerID uuid.UUID, name string) (*Board, error) {
	board := &Board{
		ID:        uuid.New(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := board.Validate(); err != nil {
		return nil, err
	}

	return board, nil
}

// Validate checks if the Board has valid data.
func (b *Board) Validate() error {
	if b.ID == uuid.Nil {
		return ErrEmptyBoardID
	}
	if b.Name == "" {
		return ErrEmptyBoardName
	}
	if b.OwnerID == uuid.Nil {
		return ErrEmptyBoardOwnerID
	}
	return nil
}

// IsOwnedBy reports whether the given user owns this board. The owner is
// always treated as a member, even if the membership row has been removed.
func (b *Board) IsOwnedBy(userID uuid.UUID) bool {
	return b.OwnerID == userID
}

// BoardMember links a user to a board. A (board, user) pair appears at
// most once; the unique constraint lives in the board_members table.
type BoardMember struct {
	ID      uuid.UUID `json:"id"`
	BoardID uuid.UUID `json:"board_id"`
	UserID  uuid.UUID `json:"user_id"`
}

// NewBoardMember creates a membership row linking the given user to the board.
func NewBoardMember(boardID, userID uuid.UUID) (*BoardMember, error) {
	member := &BoardMember{
		ID:      uuid.New(),
		BoardID: boardID,
		UserID:  userID,
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	return member, nil
}

// Validate checks if the BoardMember has valid data.
func (m *BoardMember) Validate() error {
	if m.ID == uuid.Nil {
		return ErrInvalidID
	}
	if m.BoardID == uuid.Nil {
		return ErrEmptyBoardID
	}
	if m.UserID == uuid.Nil {
		return ErrEmptyMemberUserID
	}
	return nil
}
