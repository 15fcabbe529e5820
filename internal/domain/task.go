package domain

import (
	"math"
	"strings"
	"time"
)

// TaskStatus represents the progress state of a task.
type TaskStatus string

const (
	// TaskStatusPending is the status of a task that still needs doing.
	TaskStatusPending TaskStatus = "Pending"
	// TaskStatusCompleted is the status of a finished task.
	TaskStatusCompleted TaskStatus = "Completed"
)

// Task field limits and defaults.
const (
	MaxTaskTitleLength       = 200
	MaxTaskDescriptionLength = 2000
	DefaultTaskPriority      = 1

	// MaxTaskPriority is the largest value the INTEGER column holds.
	MaxTaskPriority = math.MaxInt32
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is a to-do item. Lists are ordered by ascending Priority.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    int        `json:"priority"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a Task, applying the default status when none is given.
func NewTask(title, description string, priority int, status TaskStatus) (*Task, error) {
	if status == "" {
		status = TaskStatusPending
	}

	now := time.Now().UTC()
	task := &Task{
		Title:       strings.TrimSpace(title),
		Description: description,
		Priority:    priority,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks every task field and returns the first violation as a
// *ValidationError.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "is required", nil)
	}
	if len([]rune(t.Title)) > MaxTaskTitleLength {
		return NewValidationError("title", "must be at most 200 characters", nil)
	}
	if len([]rune(t.Description)) > MaxTaskDescriptionLength {
		return NewValidationError("description", "must be at most 2000 characters", nil)
	}
	if t.Priority < 0 {
		return NewValidationError("priority", "must not be negative", nil)
	}
	if t.Priority > MaxTaskPriority {
		return NewValidationError("priority", "must be at most 2147483647", nil)
	}
	if !t.Status.Valid() {
		return NewValidationError("status", "must be one of Pending, Completed", ErrInvalidTaskStatus)
	}
	return nil
}
