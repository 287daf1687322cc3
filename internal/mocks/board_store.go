package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockBoardStore implements store.BoardStore for testing.
type MockBoardStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, board *domain.Board) error
	GetByIDFn      func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	UpdateNameFn   func(ctx context.Context, id uuid.UUID, name string) error
	DeleteFn       func(ctx context.Context, id uuid.UUID) error
	ListForUserFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	AddMemberFn    func(ctx context.Context, member *domain.BoardMember) error
	RemoveMemberFn func(ctx context.Context, boardID, userID uuid.UUID) error
	IsMemberFn     func(ctx context.Context, boardID, userID uuid.UUID) (bool, error)
	ListMembersFn  func(ctx context.Context, boardID uuid.UUID) ([]*domain.User, error)

	// Data for the default implementation
	Boards map[uuid.UUID]*domain.Board

	// Memberships maps board ID to the set of member user IDs.
	Memberships map[uuid.UUID]map[uuid.UUID]bool

	// MemberOrder preserves membership insertion order per board.
	MemberOrder map[uuid.UUID][]uuid.UUID

	// Users resolves member IDs for ListMembers; tests that exercise it
	// should share the map with the MockUserStore.
	Users map[uuid.UUID]*domain.User
}

// NewMockBoardStore creates a new mock store with initialized defaults.
func NewMockBoardStore() *MockBoardStore {
	return &MockBoardStore{
		Boards:      make(map[uuid.UUID]*domain.Board),
		Memberships: make(map[uuid.UUID]map[uuid.UUID]bool),
		MemberOrder: make(map[uuid.UUID][]uuid.UUID),
		Users:       make(map[uuid.UUID]*domain.User),
	}
}

// AddBoard seeds the store with a board owned by ownerID, including the
// owner's membership row, and returns it.
func (m *MockBoardStore) AddBoard(name string, ownerID uuid.UUID) *domain.Board {
	board := &domain.Board{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
	}
	m.Boards[board.ID] = board
	m.addMembership(board.ID, ownerID)
	return board
}

func (m *MockBoardStore) addMembership(boardID, userID uuid.UUID) {
	if m.Memberships[boardID] == nil {
		m.Memberships[boardID] = make(map[uuid.UUID]bool)
	}
	m.Memberships[boardID][userID] = true
	m.MemberOrder[boardID] = append(m.MemberOrder[boardID], userID)
}

// Create implements the BoardStore interface.
func (m *MockBoardStore) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, board)
	}
	m.Boards[board.ID] = board
	return nil
}

// GetByID implements the BoardStore interface.
func (m *MockBoardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	board, ok := m.Boards[id]
	if !ok {
		return nil, store.ErrBoardNotFound
	}
	return board, nil
}

// UpdateName implements the BoardStore interface.
func (m *MockBoardStore) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	if m.UpdateNameFn != nil {
		return m.UpdateNameFn(ctx, id, name)
	}

	board, ok := m.Boards[id]
	if !ok {
		return store.ErrBoardNotFound
	}
	board.Name = name
	return nil
}

// Delete implements the BoardStore interface.
func (m *MockBoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Boards[id]; !ok {
		return store.ErrBoardNotFound
	}
	delete(m.Boards, id)
	delete(m.Memberships, id)
	delete(m.MemberOrder, id)
	return nil
}

// ListForUser implements the BoardStore interface.
func (m *MockBoardStore) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Board, error) {
	if m.ListForUserFn != nil {
		return m.ListForUserFn(ctx, userID)
	}

	var boards []*domain.Board
	for _, board := range m.Boards {
		if board.OwnerID == userID || m.Memberships[board.ID][userID] {
			boards = append(boards, board)
		}
	}
	return boards, nil
}

// AddMember implements the BoardStore interface.
func (m *MockBoardStore) AddMember(ctx context.Context, member *domain.BoardMember) error {
	if m.AddMemberFn != nil {
		return m.AddMemberFn(ctx, member)
	}

	if m.Memberships[member.BoardID][member.UserID] {
		return store.ErrMembershipExists
	}
	m.addMembership(member.BoardID, member.UserID)
	return nil
}

// RemoveMember implements the BoardStore interface.
func (m *MockBoardStore) RemoveMember(ctx context.Context, boardID, userID uuid.UUID) error {
	if m.RemoveMemberFn != nil {
		return m.RemoveMemberFn(ctx, boardID, userID)
	}

	delete(m.Memberships[boardID], userID)
	order := m.MemberOrder[boardID]
	for i, id := range order {
		if id == userID {
			m.MemberOrder[boardID] = append(order[:i], order[i+1:]...)
			break
		}
	}
	return nil
}

// IsMember implements the BoardStore interface.
func (m *MockBoardStore) IsMember(ctx context.Context, boardID, userID uuid.UUID) (bool, error) {
	if m.IsMemberFn != nil {
		return m.IsMemberFn(ctx, boardID, userID)
	}
	return m.Memberships[boardID][userID], nil
}

// ListMembers implements the BoardStore interface.
func (m *MockBoardStore) ListMembers(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.User, error) {
	if m.ListMembersFn != nil {
		return m.ListMembersFn(ctx, boardID)
	}

	var members []*domain.User
	for _, userID := range m.MemberOrder[boardID] {
		if user, ok := m.Users[userID]; ok {
			members = append(members, user)
		}
	}
	return members, nil
}

// WithTx implements the BoardStore interface. The mock has no transaction
// state, so it returns itself.
func (m *MockBoardStore) WithTx(tx *sql.Tx) store.BoardStore {
	return m
}

var _ store.BoardStore = (*MockBoardStore)(nil)
