package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/todo-api/internal/store"
)

func TestResetSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrResetEmailRequired,
		ErrResetDelivery,
		ErrResetDecode,
		ErrResetUserNotFound,
		ErrResetInvalidToken,
		ErrResetMissingPassword,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestTaskServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		message  string
		err      error
		expected string
	}{
		{
			name:     "with underlying error",
			op:       "list",
			message:  "failed to list tasks",
			err:      errors.New("database connection failed"),
			expected: "task service list failed: failed to list tasks: database connection failed",
		},
		{
			name:     "without underlying error",
			op:       "delete",
			message:  "failed to delete task",
			expected: "task service delete failed: failed to delete task",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTaskServiceError(tt.op, tt.message, tt.err)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestTaskServiceError_Unwrap(t *testing.T) {
	err := NewTaskServiceError("get", "failed to get task", store.ErrTaskNotFound)

	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var serviceErr *TaskServiceError
	assert.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "get", serviceErr.Operation)

	assert.Nil(t, NewTaskServiceError("get", "no cause", nil).Unwrap())
}
