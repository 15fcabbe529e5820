package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service"
)

func newTestTaskHandler(t *testing.T) (*TaskHandler, *mocks.MockTaskStore) {
	t.Helper()
	tasks := mocks.NewMockTaskStore()
	svc, err := service.NewTaskService(tasks, nil)
	require.NoError(t, err)
	handler := NewTaskHandler(svc, slogDiscard())
	return handler, tasks
}

func decodeTask(t *testing.T, rr *httptest.ResponseRecorder) domain.Task {
	t.Helper()
	var task domain.Task
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &task), "body: %s", rr.Body.String())
	return task
}

func createTask(t *testing.T, h *TaskHandler, body interface{}) domain.Task {
	t.Helper()
	rr := httptest.NewRecorder()
	h.CreateTask(rr, newJSONRequest(t, http.MethodPost, "/tasks/", body))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decodeTask(t, rr)
}

func taskRequest(t *testing.T, method string, id string, body interface{}) *http.Request {
	t.Helper()
	return withURLParams(newJSONRequest(t, method, "/tasks/"+id+"/", body), map[string]string{TaskIDParam: id})
}

func TestNewTaskHandlerRequiresLogger(t *testing.T) {
	assert.Panics(t, func() { NewTaskHandler(nil, nil) })
}

func TestCreateTask(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		h, _ := newTestTaskHandler(t)

		task := createTask(t, h, map[string]interface{}{"title": "Buy milk"})

		assert.NotZero(t, task.ID)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, domain.DefaultTaskPriority, task.Priority)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
	})

	tests := []struct {
		name    string
		body    interface{}
		wantErr string
	}{
		{name: "missing title", body: map[string]interface{}{"priority": 2}, wantErr: "Title is required"},
		{name: "negative priority", body: map[string]interface{}{"title": "x", "priority": -1}, wantErr: "Priority must not be negative"},
		{name: "priority out of range", body: map[string]interface{}{"title": "x", "priority": int64(1) << 40}, wantErr: "Priority must be at most 2147483647"},
		{name: "unknown status", body: map[string]interface{}{"title": "x", "status": "Done"}, wantErr: "Status must be one of Pending, Completed"},
		{name: "wrong type", body: `{"title": "x", "priority": "high"}`, wantErr: "Invalid request format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestTaskHandler(t)
			rr := httptest.NewRecorder()

			h.CreateTask(rr, newJSONRequest(t, http.MethodPost, "/tasks/", tt.body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantErr, errorMessage(t, rr))
		})
	}
}

func TestListTasks(t *testing.T) {
	t.Run("empty list is an array", func(t *testing.T) {
		h, _ := newTestTaskHandler(t)
		rr := httptest.NewRecorder()

		h.ListTasks(rr, httptest.NewRequest(http.MethodGet, "/tasks/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("ordered by priority", func(t *testing.T) {
		h, _ := newTestTaskHandler(t)
		for _, p := range []int{3, 0, 7, 1} {
			createTask(t, h, map[string]interface{}{"title": "p" + strconv.Itoa(p), "priority": p})
		}
		rr := httptest.NewRecorder()

		h.ListTasks(rr, httptest.NewRequest(http.MethodGet, "/tasks/", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var tasks []domain.Task
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tasks))
		require.Len(t, tasks, 4)
		for i, want := range []int{0, 1, 3, 7} {
			assert.Equal(t, want, tasks[i].Priority)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		h, store := newTestTaskHandler(t)
		store.Err = errors.New("db down")
		rr := httptest.NewRecorder()

		h.ListTasks(rr, httptest.NewRequest(http.MethodGet, "/tasks/", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Failed to list tasks", errorMessage(t, rr))
	})
}

func TestGetTask(t *testing.T) {
	h, _ := newTestTaskHandler(t)
	created := createTask(t, h, map[string]interface{}{
		"title":       "Round trip",
		"description": "all fields",
		"priority":    4,
		"status":      "Completed",
	})

	rr := httptest.NewRecorder()
	h.GetTask(rr, taskRequest(t, http.MethodGet, strconv.FormatInt(created.ID, 10), nil))

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeTask(t, rr)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Round trip", got.Title)
	assert.Equal(t, "all fields", got.Description)
	assert.Equal(t, 4, got.Priority)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)

	for _, id := range []string{"999", "abc", "0", "-1"} {
		rr := httptest.NewRecorder()
		h.GetTask(rr, taskRequest(t, http.MethodGet, id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code, "id %q", id)
	}
}

func TestReplaceTask(t *testing.T) {
	h, _ := newTestTaskHandler(t)
	created := createTask(t, h, map[string]interface{}{"title": "Old", "description": "keep?", "priority": 5})
	id := strconv.FormatInt(created.ID, 10)

	rr := httptest.NewRecorder()
	h.ReplaceTask(rr, taskRequest(t, http.MethodPut, id, map[string]interface{}{"title": "New", "priority": 2}))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decodeTask(t, rr)
	assert.Equal(t, "New", got.Title)
	assert.Empty(t, got.Description)
	assert.Equal(t, 2, got.Priority)

	rr = httptest.NewRecorder()
	h.ReplaceTask(rr, taskRequest(t, http.MethodPut, id, map[string]interface{}{"priority": 2}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Title is required", errorMessage(t, rr))

	rr = httptest.NewRecorder()
	h.ReplaceTask(rr, taskRequest(t, http.MethodPut, id, map[string]interface{}{"title": "New", "priority": 2147483648}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Priority must be at most 2147483647", errorMessage(t, rr))

	rr = httptest.NewRecorder()
	h.ReplaceTask(rr, taskRequest(t, http.MethodPut, "404", map[string]interface{}{"title": "x"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Task not found", errorMessage(t, rr))
}

func TestPatchTask(t *testing.T) {
	h, _ := newTestTaskHandler(t)
	created := createTask(t, h, map[string]interface{}{"title": "Write report", "description": "Q3", "priority": 2})
	id := strconv.FormatInt(created.ID, 10)

	rr := httptest.NewRecorder()
	h.PatchTask(rr, taskRequest(t, http.MethodPatch, id, map[string]interface{}{"status": "Completed"}))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decodeTask(t, rr)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "Q3", got.Description)
	assert.Equal(t, 2, got.Priority)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)

	rr = httptest.NewRecorder()
	h.PatchTask(rr, taskRequest(t, http.MethodPatch, id, map[string]interface{}{"status": "Unknown"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteTask(t *testing.T) {
	h, _ := newTestTaskHandler(t)
	created := createTask(t, h, map[string]interface{}{"title": "Temp"})
	id := strconv.FormatInt(created.ID, 10)

	rr := httptest.NewRecorder()
	h.DeleteTask(rr, taskRequest(t, http.MethodDelete, id, nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = httptest.NewRecorder()
	h.GetTask(rr, taskRequest(t, http.MethodGet, id, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteTask(rr, taskRequest(t, http.MethodDelete, id, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}
