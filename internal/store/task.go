package store

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// List returns every task ordered by ascending priority, then ID.
	List(ctx context.Context) ([]*domain.Task, error)

	// Create validates and saves a new task, setting task.ID.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update validates and overwrites every mutable field of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
