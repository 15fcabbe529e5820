package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	t.Run("applies default status", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(" Write report ", "quarterly numbers", 3, "")
		require.NoError(t, err)
		assert.Equal(t, "Write report", task.Title)
		assert.Equal(t, TaskStatusPending, task.Status)
		assert.Equal(t, 3, task.Priority)
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask("Ship", "", 0, TaskStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, TaskStatusCompleted, task.Status)
	})

	t.Run("rejects blank title", func(t *testing.T) {
		t.Parallel()
		_, err := NewTask("   ", "", 1, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "title", vErr.Field)
	})
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	base := func() Task {
		return Task{Title: "t", Priority: 1, Status: TaskStatusPending}
	}

	tests := []struct {
		name      string
		mutate    func(*Task)
		wantField string
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "title too long", mutate: func(t *Task) { t.Title = strings.Repeat("a", 201) }, wantField: "title"},
		{name: "description too long", mutate: func(t *Task) { t.Description = strings.Repeat("d", 2001) }, wantField: "description"},
		{name: "negative priority", mutate: func(t *Task) { t.Priority = -1 }, wantField: "priority"},
		{name: "max priority", mutate: func(t *Task) { t.Priority = MaxTaskPriority }},
		{name: "priority out of range", mutate: func(t *Task) { t.Priority = MaxTaskPriority + 1 }, wantField: "priority"},
		{name: "unknown status", mutate: func(t *Task) { t.Status = "Archived" }, wantField: "status"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			task := base()
			tt.mutate(&task)

			err := task.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestInvalidStatusWrapsSentinel(t *testing.T) {
	t.Parallel()

	task := Task{Title: "t", Status: "nope"}
	err := task.Validate()
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
	assert.ErrorIs(t, err, ErrValidation)
}
