// Package storetest holds behavioural tests that every store.UserStore and
// store.TaskStore implementation must pass. Backend packages call the Run*
// functions from their own tests with a factory for a fresh, empty store.
package storetest

import (
	"context"
	"testing"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// UserStoreFactory returns an empty UserStore scoped to t.
type UserStoreFactory func(t *testing.T) store.UserStore

// TaskStoreFactory returns an empty TaskStore scoped to t.
type TaskStoreFactory func(t *testing.T) store.TaskStore

func mustUser(t *testing.T, username, email, password string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, email, password)
	require.NoError(t, err)
	return user
}

// RunUserStoreTests exercises the store.UserStore contract.
func RunUserStoreTests(t *testing.T, newStore UserStoreFactory) {
	t.Run("create hashes password and assigns id", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		user := mustUser(t, "alice", "alice@example.com", "s3cretpass")
		require.NoError(t, s.Create(ctx, user))

		assert.NotZero(t, user.ID)
		assert.Empty(t, user.Password, "plaintext password should be cleared")
		require.NotEmpty(t, user.HashedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(user.HashedPassword), []byte("s3cretpass")))

		got, err := s.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, user.HashedPassword, got.HashedPassword)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("create rejects duplicate username", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.Create(ctx, mustUser(t, "bob", "bob@example.com", "password1")))
		err := s.Create(ctx, mustUser(t, "bob", "other@example.com", "password2"))

		assert.ErrorIs(t, err, store.ErrUsernameExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("create rejects invalid user", func(t *testing.T) {
		s := newStore(t)
		user := &domain.User{Username: "", Email: "x@example.com", Password: "password1"}

		err := s.Create(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
	})

	t.Run("lookups by username", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		user := mustUser(t, "carol", "carol@example.com", "password1")
		require.NoError(t, s.Create(ctx, user))

		got, err := s.GetByUsername(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)

		exists, err := s.UsernameExists(ctx, "carol")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.UsernameExists(ctx, "dave")
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = s.GetByUsername(ctx, "dave")
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		_, err = s.GetByID(ctx, user.ID+1000)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("get by email returns oldest account", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		first := mustUser(t, "erin", "shared@example.com", "password1")
		second := mustUser(t, "frank", "shared@example.com", "password2")
		require.NoError(t, s.Create(ctx, first))
		require.NoError(t, s.Create(ctx, second))

		got, err := s.GetByEmail(ctx, "shared@example.com")
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)

		_, err = s.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("update replaces password hash", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		user := mustUser(t, "grace", "grace@example.com", "oldpassword")
		require.NoError(t, s.Create(ctx, user))
		oldHash := user.HashedPassword

		user.Password = "newpassword"
		require.NoError(t, s.Update(ctx, user))
		assert.Empty(t, user.Password)

		got, err := s.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEqual(t, oldHash, got.HashedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword(
			[]byte(got.HashedPassword), []byte("newpassword")))
	})

	t.Run("update missing user", func(t *testing.T) {
		s := newStore(t)
		user := &domain.User{
			ID:             424242,
			Username:       "ghost",
			Email:          "ghost@example.com",
			HashedPassword: "$2a$04$abcdefghijklmnopqrstuu",
		}

		err := s.Update(context.Background(), user)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func mustTask(t *testing.T, title string, priority int, status domain.TaskStatus) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, "", priority, status)
	require.NoError(t, err)
	return task
}

// RunTaskStoreTests exercises the store.TaskStore contract.
func RunTaskStoreTests(t *testing.T, newStore TaskStoreFactory) {
	t.Run("create and get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		task, err := domain.NewTask("Write report", "quarterly numbers", 3, "")
		require.NoError(t, err)
		require.NoError(t, s.Create(ctx, task))
		assert.NotZero(t, task.ID)

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Write report", got.Title)
		assert.Equal(t, "quarterly numbers", got.Description)
		assert.Equal(t, 3, got.Priority)
		assert.Equal(t, domain.TaskStatusPending, got.Status)
	})

	t.Run("create rejects invalid task", func(t *testing.T) {
		s := newStore(t)
		task := &domain.Task{Title: "x", Priority: 1, Status: "Archived"}

		err := s.Create(context.Background(), task)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	})

	t.Run("priority bounds", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		top := &domain.Task{Title: "top", Priority: domain.MaxTaskPriority, Status: domain.TaskStatusPending}
		require.NoError(t, s.Create(ctx, top))
		got, err := s.GetByID(ctx, top.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxTaskPriority, got.Priority)

		tooBig := &domain.Task{Title: "x", Priority: domain.MaxTaskPriority + 1, Status: domain.TaskStatusPending}
		assert.ErrorIs(t, s.Create(ctx, tooBig), domain.ErrValidation)

		got.Priority = domain.MaxTaskPriority + 1
		assert.ErrorIs(t, s.Update(ctx, got), domain.ErrValidation)
	})

	t.Run("list orders by priority then id", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		empty, err := s.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		low := mustTask(t, "low", 5, domain.TaskStatusPending)
		high := mustTask(t, "high", 0, domain.TaskStatusCompleted)
		midA := mustTask(t, "mid a", 2, domain.TaskStatusPending)
		midB := mustTask(t, "mid b", 2, domain.TaskStatusPending)
		for _, task := range []*domain.Task{low, high, midA, midB} {
			require.NoError(t, s.Create(ctx, task))
		}

		tasks, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 4)

		var titles []string
		for _, task := range tasks {
			titles = append(titles, task.Title)
		}
		assert.Equal(t, []string{"high", "mid a", "mid b", "low"}, titles)
	})

	t.Run("update", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		task := mustTask(t, "draft", 1, domain.TaskStatusPending)
		require.NoError(t, s.Create(ctx, task))

		task.Title = "final"
		task.Status = domain.TaskStatusCompleted
		task.Priority = 4
		require.NoError(t, s.Update(ctx, task))

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "final", got.Title)
		assert.Equal(t, domain.TaskStatusCompleted, got.Status)
		assert.Equal(t, 4, got.Priority)

		missing := mustTask(t, "missing", 1, domain.TaskStatusPending)
		missing.ID = task.ID + 1000
		assert.ErrorIs(t, s.Update(ctx, missing), store.ErrTaskNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		task := mustTask(t, "temp", 1, domain.TaskStatusPending)
		require.NoError(t, s.Create(ctx, task))

		require.NoError(t, s.Delete(ctx, task.ID))

		_, err := s.GetByID(ctx, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.ErrorIs(t, s.Delete(ctx, task.ID), store.ErrTaskNotFound)
	})
}
