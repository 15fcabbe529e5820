package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// UserStore implements store.UserStore on SQLite.
type UserStore struct {
	db         store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore returns a UserStore. It panics if db is nil.
func NewUserStore(db store.DBTX, bcryptCost int, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:         db,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

const userColumns = `id, username, email, hashed_password, created_at, updated_at`

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.Password == "" {
		return domain.ErrEmptyPassword
	}
	if err := user.Validate(); err != nil {
		return err
	}

	hash, err := store.HashPassword(user.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, email, hashed_password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.Username, user.Email, hash, now, now)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrUsernameExists
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return fmt.Errorf("failed to create user: %w", MapError(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}

	user.ID = id
	user.HashedPassword = hash
	user.Password = ""
	user.CreatedAt = now
	user.UpdatedAt = now

	log.Info("user created successfully", slog.Int64("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// GetByUsername implements store.UserStore.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

// GetByEmail implements store.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? ORDER BY id ASC LIMIT 1`, email)
}

// UsernameExists implements store.UserStore.
func (s *UserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", MapError(err))
	}
	return exists, nil
}

// Update implements store.UserStore.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return err
	}

	hash := user.HashedPassword
	if user.Password != "" {
		var err error
		hash, err = store.HashPassword(user.Password, s.bcryptCost)
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET username = ?, email = ?, hashed_password = ?, updated_at = ?
		WHERE id = ?
	`, user.Username, user.Email, hash, now, user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrUsernameExists
		}
		log.Error("failed to update user",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to update user: %w", MapError(err))
	}
	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	user.HashedPassword = hash
	user.Password = ""
	user.UpdatedAt = now
	return nil
}

func (s *UserStore) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", MapError(err))
	}
	return &user, nil
}
