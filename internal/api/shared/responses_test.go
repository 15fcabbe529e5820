package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// newTracedRequest returns a request carrying a fixed trace ID and a
// buffered debug logger.
func newTracedRequest(t *testing.T) (*http.Request, *logger.Buffer) {
	t.Helper()
	log, buf := logger.NewBufferLogger()
	ctx := context.WithValue(context.Background(), TraceIDKey, "test-trace-id")
	ctx = logger.WithLogger(ctx, log)
	return httptest.NewRequest(http.MethodGet, "/tasks", nil).WithContext(ctx), buf
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "object",
			status:       http.StatusOK,
			data:         map[string]interface{}{"message": "success", "data": 123},
			expectedBody: `{"message":"success","data":123}`,
		},
		{
			name:         "created",
			status:       http.StatusCreated,
			data:         MessageResponse{Message: "Registered Successfully"},
			expectedBody: `{"message":"Registered Successfully"}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithJSONEncodingError(t *testing.T) {
	req, buf := newTracedRequest(t)
	w := httptest.NewRecorder()

	RespondWithJSON(w, req, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Contains(t, buf.String(), "failed to encode JSON response")
}

func TestRespondWithError(t *testing.T) {
	req, _ := newTracedRequest(t)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "Invalid credentials")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "test-trace-id", w.Header().Get(TraceIDHeader))
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestRespondWithErrorNoTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusNotFound, "Not found")

	assert.Empty(t, w.Header().Get(TraceIDHeader))
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}

func TestRespondWithMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	w := httptest.NewRecorder()

	RespondWithMessage(w, req, http.StatusOK, "Welcome to dashboard")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to dashboard"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		err       error
		opts      []ResponseOption
		wantLevel string
	}{
		{
			name:      "server error logged at error",
			status:    http.StatusInternalServerError,
			err:       errors.New("connect postgres://user:secret@db:5432/todo failed"),
			wantLevel: "ERROR",
		},
		{
			name:      "client error logged at debug",
			status:    http.StatusBadRequest,
			err:       errors.New("bad input"),
			wantLevel: "DEBUG",
		},
		{
			name:      "rate limit logged at warn",
			status:    http.StatusTooManyRequests,
			err:       errors.New("slow down"),
			wantLevel: "WARN",
		},
		{
			name:      "elevated client error",
			status:    http.StatusUnauthorized,
			err:       errors.New("bad token"),
			opts:      []ResponseOption{WithElevatedLogLevel()},
			wantLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, buf := newTracedRequest(t)
			w := httptest.NewRecorder()

			RespondWithErrorAndLog(w, req, tc.status, "Something went wrong", tc.err, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "test-trace-id", w.Header().Get(TraceIDHeader))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Something went wrong", body.Error)
			assert.NotContains(t, w.Body.String(), tc.err.Error())

			entries, err := buf.Entries()
			require.NoError(t, err)
			require.NotEmpty(t, entries)
			last := entries[len(entries)-1]
			assert.Equal(t, "API error response", last["msg"])
			assert.Equal(t, tc.wantLevel, last["level"])
			assert.Equal(t, "test-trace-id", last["trace_id"])
			assert.NotContains(t, buf.String(), "secret@")
		})
	}
}
