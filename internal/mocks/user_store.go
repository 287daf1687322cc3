package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn                func(ctx context.Context, user *domain.User) error
	GetByIDFn               func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn         func(ctx context.Context, username string) (*domain.User, error)
	ListAvailableForBoardFn func(ctx context.Context, boardID uuid.UUID) ([]*domain.User, error)

	// Data for the default implementation
	Users map[uuid.UUID]*domain.User

	// Memberships backs ListAvailableForBoard; tests that exercise it
	// should share the map with the MockBoardStore.
	Memberships map[uuid.UUID]map[uuid.UUID]bool
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:       make(map[uuid.UUID]*domain.User),
		Memberships: make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

// AddUser seeds the store with a user and returns it.
func (m *MockUserStore) AddUser(username string) *domain.User {
	user := &domain.User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: "hashed-password",
	}
	m.Users[user.ID] = user
	return user
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	for _, existing := range m.Users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}
	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByUsername implements the UserStore interface.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	for _, user := range m.Users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// ListAvailableForBoard implements the UserStore interface.
func (m *MockUserStore) ListAvailableForBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.User, error) {
	if m.ListAvailableForBoardFn != nil {
		return m.ListAvailableForBoardFn(ctx, boardID)
	}

	members := m.Memberships[boardID]
	var available []*domain.User
	for _, user := range m.Users {
		if !members[user.ID] {
			available = append(available, user)
		}
	}
	sort.Slice(available, func(i, j int) bool {
		return available[i].Username < available[j].Username
	})
	return available, nil
}

// WithTx implements the UserStore interface. The mock has no transaction
// state, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

var _ store.UserStore = (*MockUserStore)(nil)
