package store

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It validates the user and hashes the plaintext password internally.
	// On success user.ID and user.HashedPassword are populated and
	// user.Password is cleared.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their numeric ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by their exact username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByEmail retrieves the oldest user (lowest ID) registered with the email.
	// Returns ErrUserNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UsernameExists reports whether a user with the username exists.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Update modifies an existing user's details.
	// If a new plaintext Password is set, it is hashed and replaces HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrUsernameExists if the new username collides with another user.
	Update(ctx context.Context, user *domain.User) error
}
