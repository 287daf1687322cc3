package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
)

// CommentWithAuthor pairs a comment with its author's username, which the
// wire format includes but the comments table does not store.
type CommentWithAuthor struct {
	domain.Comment
	Username string `json:"username"`
}

// CommentStore defines the interface for comment persistence. Comments are
// append-only; there are no update or delete methods.
type CommentStore interface {
	// Create saves a new comment to the store.
	Create(ctx context.Context, comment *domain.Comment) error

	// ListForTask returns the task's comments joined with their authors'
	// usernames, ordered by creation timestamp ascending.
	ListForTask(ctx context.Context, taskID uuid.UUID) ([]*CommentWithAuthor, error)

	// WithTx returns a new CommentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CommentStore
}
