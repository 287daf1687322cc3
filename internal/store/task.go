package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// UpdateContent replaces the task's content.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error

	// UpdateStatus replaces the task's status string.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error

	// UpdateAssignee reassigns the task. A nil assignee clears the
	// assignment. Returns ErrTaskNotFound if the task does not exist.
	UpdateAssignee(ctx context.Context, id uuid.UUID, assigneeID *uuid.UUID) error

	// Delete removes a task; its comments go with it via ON DELETE CASCADE.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListForBoard returns the board's tasks ordered by creation time.
	ListForBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Task, error)

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
