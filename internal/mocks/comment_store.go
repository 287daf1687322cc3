package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, comment *domain.Comment) error
	ListForTaskFn func(ctx context.Context, taskID uuid.UUID) ([]*store.CommentWithAuthor, error)

	// Data for the default implementation
	Comments []*domain.Comment

	// Users resolves comment authors for ListForTask; tests that exercise
	// it should share the map with the MockUserStore.
	Users map[uuid.UUID]*domain.User
}

// NewMockCommentStore creates a new mock store with initialized defaults.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Users: make(map[uuid.UUID]*domain.User),
	}
}

// Create implements the CommentStore interface.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	m.Comments = append(m.Comments, comment)
	return nil
}

// ListForTask implements the CommentStore interface.
func (m *MockCommentStore) ListForTask(
	ctx context.Context,
	taskID uuid.UUID,
) ([]*store.CommentWithAuthor, error) {
	if m.ListForTaskFn != nil {
		return m.ListForTaskFn(ctx, taskID)
	}

	var comments []*store.CommentWithAuthor
	for _, c := range m.Comments {
		if c.TaskID != taskID {
			continue
		}
		username := ""
		if user, ok := m.Users[c.UserID]; ok {
			username = user.Username
		}
		comments = append(comments, &store.CommentWithAuthor{
			Comment:  *c,
			Username: username,
		})
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt < comments[j].CreatedAt
	})
	return comments, nil
}

// WithTx implements the CommentStore interface. The mock has no transaction
// state, so it returns itself.
func (m *MockCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return m
}

var _ store.CommentStore = (*MockCommentStore)(nil)
