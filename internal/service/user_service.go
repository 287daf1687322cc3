package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskboard-api/internal/domain"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// UserService provides user account operations.
type UserService struct {
	db        *sql.DB
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) (*UserService, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if userStore == nil {
		return nil, fmt.Errorf("userStore cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		db:        db,
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register creates a new user account with the given credentials.
// Returns store.ErrUsernameExists if the username is already taken.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := domain.NewUser(username, password)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username",
				slog.String("username", username))
		} else {
			s.logger.Error("failed to save user",
				slog.String("error", err.Error()),
				slog.String("username", username))
		}
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userStore.GetByID(ctx, userID)
}

// ListAvailableForBoard returns users that are not yet members of the board,
// excluding the board owner, ordered by username.
func (s *UserService) ListAvailableForBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.User, error) {
	return s.userStore.ListAvailableForBoard(ctx, boardID)
}
