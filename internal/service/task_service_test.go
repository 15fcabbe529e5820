package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func newTaskService(t *testing.T) (service.TaskService, *mocks.MockTaskStore) {
	t.Helper()
	tasks := mocks.NewMockTaskStore()
	svc, err := service.NewTaskService(tasks, nil)
	require.NoError(t, err)
	return svc, tasks
}

func TestNewTaskService_NilStore(t *testing.T) {
	_, err := service.NewTaskService(nil, nil)
	assert.Error(t, err)
}

func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults", func(t *testing.T) {
		svc, _ := newTaskService(t)

		task, err := svc.CreateTask(ctx, service.TaskInput{Title: "  Buy milk  "})
		require.NoError(t, err)
		assert.NotZero(t, task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, domain.DefaultTaskPriority, task.Priority)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
	})

	t.Run("explicit zero priority kept", func(t *testing.T) {
		svc, _ := newTaskService(t)

		task, err := svc.CreateTask(ctx, service.TaskInput{Title: "Urgent", Priority: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, 0, task.Priority)
	})

	t.Run("validation error", func(t *testing.T) {
		svc, _ := newTaskService(t)

		_, err := svc.CreateTask(ctx, service.TaskInput{Title: ""})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.CreateTask(ctx, service.TaskInput{Title: "x", Status: "Archived"})
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	})

	t.Run("store error wrapped", func(t *testing.T) {
		svc, tasks := newTaskService(t)
		tasks.Err = errors.New("db down")

		_, err := svc.CreateTask(ctx, service.TaskInput{Title: "x"})
		var serviceErr *service.TaskServiceError
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, "create", serviceErr.Operation)
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService(t)

	for _, in := range []service.TaskInput{
		{Title: "low", Priority: intPtr(5)},
		{Title: "high", Priority: intPtr(0)},
		{Title: "mid", Priority: intPtr(2)},
	} {
		_, err := svc.CreateTask(ctx, in)
		require.NoError(t, err)
	}

	tasks, err := svc.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"high", "mid", "low"},
		[]string{tasks[0].Title, tasks[1].Title, tasks[2].Title})
}

func TestTaskService_ReplaceTask(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites every field", func(t *testing.T) {
		svc, _ := newTaskService(t)
		created, err := svc.CreateTask(ctx, service.TaskInput{
			Title:       "Old",
			Description: "desc",
			Priority:    intPtr(4),
			Status:      domain.TaskStatusCompleted,
		})
		require.NoError(t, err)

		updated, err := svc.ReplaceTask(ctx, created.ID, service.TaskInput{Title: "New"})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
		assert.Empty(t, updated.Description)
		assert.Equal(t, domain.DefaultTaskPriority, updated.Priority)
		assert.Equal(t, domain.TaskStatusPending, updated.Status)

		got, err := svc.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", got.Title)
	})

	t.Run("missing task", func(t *testing.T) {
		svc, _ := newTaskService(t)

		_, err := svc.ReplaceTask(ctx, 42, service.TaskInput{Title: "New"})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("invalid replacement", func(t *testing.T) {
		svc, _ := newTaskService(t)
		created, err := svc.CreateTask(ctx, service.TaskInput{Title: "Old"})
		require.NoError(t, err)

		_, err = svc.ReplaceTask(ctx, created.ID, service.TaskInput{Title: "New", Priority: intPtr(-1)})
		assert.ErrorIs(t, err, domain.ErrValidation)

		got, err := svc.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old", got.Title)
	})
}

func TestTaskService_PatchTask(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only present fields", func(t *testing.T) {
		svc, _ := newTaskService(t)
		created, err := svc.CreateTask(ctx, service.TaskInput{
			Title:       "Write report",
			Description: "quarterly",
			Priority:    intPtr(3),
		})
		require.NoError(t, err)

		completed := domain.TaskStatusCompleted
		patched, err := svc.PatchTask(ctx, created.ID, service.TaskPatch{Status: &completed})
		require.NoError(t, err)
		assert.Equal(t, "Write report", patched.Title)
		assert.Equal(t, "quarterly", patched.Description)
		assert.Equal(t, 3, patched.Priority)
		assert.Equal(t, domain.TaskStatusCompleted, patched.Status)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		svc, _ := newTaskService(t)
		created, err := svc.CreateTask(ctx, service.TaskInput{Title: "Keep"})
		require.NoError(t, err)

		_, err = svc.PatchTask(ctx, created.ID, service.TaskPatch{Title: strPtr("  ")})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing task", func(t *testing.T) {
		svc, _ := newTaskService(t)

		_, err := svc.PatchTask(ctx, 7, service.TaskPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTaskService(t)

	created, err := svc.CreateTask(ctx, service.TaskInput{Title: "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, created.ID))

	_, err = svc.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = svc.DeleteTask(ctx, created.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}
