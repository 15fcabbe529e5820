package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResult implements sql.Result for testing
type mockResult struct {
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (m mockResult) RowsAffected() (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.rowsAffected, nil
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedError error
		expectedMsg   string
	}{
		{
			name:          "nil_error",
			err:           nil,
			expectedError: nil,
		},
		{
			name:          "sql_no_rows",
			err:           sql.ErrNoRows,
			expectedError: store.ErrNotFound,
		},
		{
			name: "unique_violation",
			err: &pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "users_username_key",
			},
			expectedError: store.ErrDuplicate,
		},
		{
			name: "check_constraint_violation",
			err: &pgconn.PgError{
				Code:           checkViolationCode,
				ConstraintName: "tasks_priority_check",
			},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "tasks_priority_check",
		},
		{
			name: "not_null_violation",
			err: &pgconn.PgError{
				Code:       notNullViolationCode,
				ColumnName: "title",
			},
			expectedError: store.ErrInvalidEntity,
			expectedMsg:   "not null violation (title)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapError(tt.err)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedError)
			if tt.expectedMsg != "" {
				assert.Contains(t, err.Error(), tt.expectedMsg)
			}
		})
	}

	t.Run("generic_error_passes_through", func(t *testing.T) {
		plain := errors.New("connection reset")
		assert.Equal(t, plain, MapError(plain))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: checkViolationCode}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Run("rows_affected", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(mockResult{rowsAffected: 1}, store.ErrTaskNotFound))
	})

	t.Run("no_rows_returns_given_error", func(t *testing.T) {
		err := CheckRowsAffected(mockResult{}, store.ErrTaskNotFound)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("no_rows_default_error", func(t *testing.T) {
		err := CheckRowsAffected(mockResult{}, nil)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("rows_affected_error", func(t *testing.T) {
		err := CheckRowsAffected(mockResult{err: errors.New("driver")}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get rows affected")
	})

	t.Run("nil_result", func(t *testing.T) {
		assert.Error(t, CheckRowsAffected(nil, nil))
	})
}
