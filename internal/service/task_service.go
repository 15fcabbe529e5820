package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskInput carries every writable task field. Nil Priority and empty
// Status take the creation defaults.
type TaskInput struct {
	Title       string
	Description string
	Priority    *int
	Status      domain.TaskStatus
}

// TaskPatch carries the fields of a partial update; nil fields are left as
// they are.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *int
	Status      *domain.TaskStatus
}

// TaskService provides the task CRUD use cases.
type TaskService interface {
	// ListTasks returns all tasks ordered by ascending priority.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// CreateTask validates input and stores a new task.
	CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error)

	// GetTask returns one task or store.ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// ReplaceTask overwrites every writable field of a task.
	ReplaceTask(ctx context.Context, id int64, input TaskInput) (*domain.Task, error)

	// PatchTask updates only the fields present in patch.
	PatchTask(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error)

	// DeleteTask removes a task or returns store.ErrTaskNotFound.
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

var _ TaskService = (*taskService)(nil)

// NewTaskService creates a TaskService backed by tasks.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, errors.New("task store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		tasks:  tasks,
		logger: logger.With("component", "task_service"),
	}, nil
}

func (in TaskInput) priority() int {
	if in.Priority == nil {
		return domain.DefaultTaskPriority
	}
	return *in.Priority
}

func (s *taskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, NewTaskServiceError("list", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskService) CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(input.Title, input.Description, input.priority(), input.Status)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, NewTaskServiceError("create", "failed to create task", err)
	}
	s.logger.Debug("task created", "task_id", task.ID)
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get", "failed to get task", err)
	}
	return task, nil
}

func (s *taskService) ReplaceTask(ctx context.Context, id int64, input TaskInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get", "failed to get task", err)
	}

	task.Title = strings.TrimSpace(input.Title)
	task.Description = input.Description
	task.Priority = input.priority()
	task.Status = input.Status
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}

	return s.save(ctx, task)
}

func (s *taskService) PatchTask(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, NewTaskServiceError("get", "failed to get task", err)
	}

	if patch.Title != nil {
		task.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	return s.save(ctx, task)
}

func (s *taskService) save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, NewTaskServiceError("update", "failed to update task", err)
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return NewTaskServiceError("delete", "failed to delete task", err)
	}
	s.logger.Debug("task deleted", "task_id", id)
	return nil
}
