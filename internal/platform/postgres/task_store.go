package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, content, status, assigned_member_id, board_id, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.Content,
		task.Status,
		task.AssignedMemberID,
		task.BoardID,
		task.CreatorID,
		task.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("board_id", task.BoardID.String()))
		return MapError(err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("board_id", task.BoardID.String()),
		slog.String("status", task.Status))
	return nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT id, content, status, assigned_member_id, board_id, creator_id, created_at
		FROM tasks
		WHERE id = $1
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, MapError(err)
	}
	return task, nil
}

// UpdateContent implements store.TaskStore.UpdateContent.
func (s *PostgresTaskStore) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE tasks SET content = $2 WHERE id = $1`,
		id,
		content,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, "task")
}

// UpdateStatus implements store.TaskStore.UpdateStatus. The status string
// is stored verbatim; no enumerated-value check is applied.
func (s *PostgresTaskStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE tasks SET status = $2 WHERE id = $1`,
		id,
		status,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, "task")
}

// UpdateAssignee implements store.TaskStore.UpdateAssignee.
func (s *PostgresTaskStore) UpdateAssignee(
	ctx context.Context,
	id uuid.UUID,
	assigneeID *uuid.UUID,
) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE tasks SET assigned_member_id = $2 WHERE id = $1`,
		id,
		assigneeID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, "task")
}

// Delete implements store.TaskStore.Delete. Comments are removed by the
// schema's ON DELETE CASCADE constraint.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "task"); err != nil {
		return err
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}

// ListForBoard implements store.TaskStore.ListForBoard.
func (s *PostgresTaskStore) ListForBoard(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.Task, error) {
	query := `
		SELECT id, content, status, assigned_member_id, board_id, creator_id, created_at
		FROM tasks
		WHERE board_id = $1
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		var task domain.Task
		var assignee uuid.NullUUID
		if err := rows.Scan(
			&task.ID,
			&task.Content,
			&task.Status,
			&assignee,
			&task.BoardID,
			&task.CreatorID,
			&task.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		if assignee.Valid {
			task.AssignedMemberID = &assignee.UUID
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// WithTx implements store.TaskStore.WithTx.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanTask scans a single task row, converting the nullable assignee column.
func scanTask(row *sql.Row) (*domain.Task, error) {
	var task domain.Task
	var assignee uuid.NullUUID
	err := row.Scan(
		&task.ID,
		&task.Content,
		&task.Status,
		&assignee,
		&task.BoardID,
		&task.CreatorID,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if assignee.Valid {
		task.AssignedMemberID = &assignee.UUID
	}
	return &task, nil
}
