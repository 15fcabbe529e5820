package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-api/internal/domain"
)

func TestGetPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "valid", value: "42", want: 42},
		{name: "max int64", value: "9223372036854775807", want: 9223372036854775807},
		{name: "missing", value: "", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-3", wantErr: true},
		{name: "overflow", value: "9223372036854775808", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/tasks/x/", nil)
			if tt.value != "" {
				req = withURLParams(req, map[string]string{"id": tt.value})
			}

			id, err := getPathID(req, "id")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestParseAndValidateRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req, ok := parseAndValidateRequest[RefreshTokenRequest](rr,
			newJSONRequest(t, http.MethodPost, "/token/refresh/", RefreshTokenRequest{Refresh: "r"}), nil)

		require.True(t, ok)
		assert.Equal(t, "r", req.Refresh)
	})

	t.Run("invalid json", func(t *testing.T) {
		rr := httptest.NewRecorder()
		_, ok := parseAndValidateRequest[RefreshTokenRequest](rr,
			newJSONRequest(t, http.MethodPost, "/token/refresh/", "{"), nil)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid request format", errorMessage(t, rr))
	})

	t.Run("failed validation", func(t *testing.T) {
		rr := httptest.NewRecorder()
		_, ok := parseAndValidateRequest[RefreshTokenRequest](rr,
			newJSONRequest(t, http.MethodPost, "/token/refresh/", map[string]string{"refresh": ""}), nil)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid refresh: required field", errorMessage(t, rr))
	})
}
