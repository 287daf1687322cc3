package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, task *domain.Task) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	UpdateContentFn  func(ctx context.Context, id uuid.UUID, content string) error
	UpdateStatusFn   func(ctx context.Context, id uuid.UUID, status string) error
	UpdateAssigneeFn func(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	ListForBoardFn   func(ctx context.Context, boardID uuid.UUID) ([]*domain.Task, error)

	// Data for the default implementation
	Tasks map[uuid.UUID]*domain.Task
}

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// AddTask seeds the store with a task and returns it.
func (m *MockTaskStore) AddTask(boardID, creatorID uuid.UUID, content string) *domain.Task {
	task := &domain.Task{
		ID:        uuid.New(),
		Content:   content,
		Status:    domain.TaskStatusNotStarted,
		BoardID:   boardID,
		CreatorID: creatorID,
	}
	m.Tasks[task.ID] = task
	return task
}

// Create implements the TaskStore interface.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, ok := m.Tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// UpdateContent implements the TaskStore interface.
func (m *MockTaskStore) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	if m.UpdateContentFn != nil {
		return m.UpdateContentFn(ctx, id, content)
	}

	task, ok := m.Tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	task.Content = content
	return nil
}

// UpdateStatus implements the TaskStore interface.
func (m *MockTaskStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}

	task, ok := m.Tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	task.Status = status
	return nil
}

// UpdateAssignee implements the TaskStore interface.
func (m *MockTaskStore) UpdateAssignee(
	ctx context.Context,
	id uuid.UUID,
	assigneeID *uuid.UUID,
) error {
	if m.UpdateAssigneeFn != nil {
		return m.UpdateAssigneeFn(ctx, id, assigneeID)
	}

	task, ok := m.Tasks[id]
	if !ok {
		return store.ErrTaskNotFound
	}
	task.AssignedMemberID = assigneeID
	return nil
}

// Delete implements the TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// ListForBoard implements the TaskStore interface.
func (m *MockTaskStore) ListForBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.Task, error) {
	if m.ListForBoardFn != nil {
		return m.ListForBoardFn(ctx, boardID)
	}

	var tasks []*domain.Task
	for _, task := range m.Tasks {
		if task.BoardID == boardID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

// WithTx implements the TaskStore interface. The mock has no transaction
// state, so it returns itself.
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}

var _ store.TaskStore = (*MockTaskStore)(nil)
