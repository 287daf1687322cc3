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

// PostgresBoardStore implements the store.BoardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBoardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBoardStore creates a new PostgreSQL implementation of the
// BoardStore interface.
func NewPostgresBoardStore(db store.DBTX, logger *slog.Logger) *PostgresBoardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBoardStore{
		db:     db,
		logger: logger.With(slog.String("component", "board_store")),
	}
}

// Ensure PostgresBoardStore implements store.BoardStore interface
var _ store.BoardStore = (*PostgresBoardStore)(nil)

// Create implements store.BoardStore.Create.
func (s *PostgresBoardStore) Create(ctx context.Context, board *domain.Board) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := board.Validate(); err != nil {
		log.Warn("board validation failed during create",
			slog.String("error", err.Error()),
			slog.String("board_id", board.ID.String()))
		return err
	}

	query := `
		INSERT INTO boards (id, name, owner_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		board.ID,
		board.Name,
		board.OwnerID,
		board.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create board",
			slog.String("error", err.Error()),
			slog.String("board_id", board.ID.String()),
			slog.String("owner_id", board.OwnerID.String()))
		return MapError(err)
	}

	log.Info("board created",
		slog.String("board_id", board.ID.String()),
		slog.String("owner_id", board.OwnerID.String()))
	return nil
}

// GetByID implements store.BoardStore.GetByID.
// Returns store.ErrBoardNotFound if the board does not exist.
func (s *PostgresBoardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM boards
		WHERE id = $1
	`

	var board domain.Board
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&board.ID,
		&board.Name,
		&board.OwnerID,
		&board.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBoardNotFound
		}
		return nil, MapError(err)
	}

	return &board, nil
}

// UpdateName implements store.BoardStore.UpdateName.
func (s *PostgresBoardStore) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	result, err := s.db.ExecContext(
		ctx,
		`UPDATE boards SET name = $2 WHERE id = $1`,
		id,
		name,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, "board")
}

// Delete implements store.BoardStore.Delete. Membership rows, tasks, and
// comments are removed by the schema's ON DELETE CASCADE constraints.
func (s *PostgresBoardStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete board",
			slog.String("error", err.Error()),
			slog.String("board_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "board"); err != nil {
		return err
	}

	log.Info("board deleted", slog.String("board_id", id.String()))
	return nil
}

// ListForUser implements store.BoardStore.ListForUser. Owned boards and
// membership boards are unioned; UNION de-duplicates by row, and board IDs
// are unique, so each board appears once.
func (s *PostgresBoardStore) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Board, error) {
	query := `
		SELECT b.id, b.name, b.owner_id, b.created_at
		FROM boards b
		WHERE b.owner_id = $1
		UNION
		SELECT b.id, b.name, b.owner_id, b.created_at
		FROM boards b
		JOIN board_members bm ON bm.board_id = b.id
		WHERE bm.user_id = $1
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var boards []*domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(
			&board.ID,
			&board.Name,
			&board.OwnerID,
			&board.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		boards = append(boards, &board)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return boards, nil
}

// AddMember implements store.BoardStore.AddMember.
// Returns store.ErrMembershipExists if the (board, user) pair already exists.
func (s *PostgresBoardStore) AddMember(ctx context.Context, member *domain.BoardMember) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := member.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO board_members (id, board_id, user_id)
		VALUES ($1, $2, $3)
	`
	_, err := s.db.ExecContext(ctx, query, member.ID, member.BoardID, member.UserID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("membership already exists",
				slog.String("board_id", member.BoardID.String()),
				slog.String("user_id", member.UserID.String()))
			return store.ErrMembershipExists
		}
		log.Error("failed to add board member",
			slog.String("error", err.Error()),
			slog.String("board_id", member.BoardID.String()),
			slog.String("user_id", member.UserID.String()))
		return MapError(err)
	}

	return nil
}

// RemoveMember implements store.BoardStore.RemoveMember. Removing an
// absent membership is a no-op.
func (s *PostgresBoardStore) RemoveMember(ctx context.Context, boardID, userID uuid.UUID) error {
	_, err := s.db.ExecContext(
		ctx,
		`DELETE FROM board_members WHERE board_id = $1 AND user_id = $2`,
		boardID,
		userID,
	)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// IsMember implements store.BoardStore.IsMember.
func (s *PostgresBoardStore) IsMember(
	ctx context.Context,
	boardID, userID uuid.UUID,
) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		`SELECT EXISTS (
			SELECT 1 FROM board_members WHERE board_id = $1 AND user_id = $2
		)`,
		boardID,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// ListMembers implements store.BoardStore.ListMembers, returning members
// in insertion order.
func (s *PostgresBoardStore) ListMembers(
	ctx context.Context,
	boardID uuid.UUID,
) ([]*domain.User, error) {
	query := `
		SELECT u.id, u.username, u.hashed_password, u.created_at
		FROM board_members bm
		JOIN users u ON u.id = bm.user_id
		WHERE bm.board_id = $1
		ORDER BY bm.joined_at
	`
	rows, err := s.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.HashedPassword,
			&user.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// WithTx implements store.BoardStore.WithTx.
func (s *PostgresBoardStore) WithTx(tx *sql.Tx) store.BoardStore {
	return &PostgresBoardStore{
		db:     tx,
		logger: s.logger,
	}
}
