package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()))
		return err
	}

	query := `
		INSERT INTO comments (id, task_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		comment.ID,
		comment.TaskID,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.String("comment_id", comment.ID.String()),
			slog.String("task_id", comment.TaskID.String()))
		// The task can be deleted between the service's existence check and
		// this insert, which surfaces as a foreign key violation here.
		if IsForeignKeyViolation(err) {
			return store.ErrTaskNotFound
		}
		return MapError(err)
	}

	log.Info("comment created",
		slog.String("comment_id", comment.ID.String()),
		slog.String("task_id", comment.TaskID.String()))
	return nil
}

// ListForTask implements store.CommentStore.ListForTask, ordered by
// creation timestamp ascending. The comment ID is the tiebreaker so that
// equal timestamps still produce a stable order.
func (s *PostgresCommentStore) ListForTask(
	ctx context.Context,
	taskID uuid.UUID,
) ([]*store.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.task_id, c.user_id, c.content, c.created_at, u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.task_id = $1
		ORDER BY c.created_at, c.id
	`
	rows, err := s.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var comments []*store.CommentWithAuthor
	for rows.Next() {
		var c store.CommentWithAuthor
		if err := rows.Scan(
			&c.ID,
			&c.TaskID,
			&c.UserID,
			&c.Content,
			&c.CreatedAt,
			&c.Username,
		); err != nil {
			return nil, MapError(err)
		}
		comments = append(comments, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return comments, nil
}

// WithTx implements store.CommentStore.WithTx.
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{
		db:     tx,
		logger: s.logger,
	}
}
