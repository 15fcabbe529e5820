package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/redact"
)

// getPathID extracts a positive int64 ID from the URL path parameters.
// Any malformed value yields an error wrapping domain.ErrInvalidID.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// parseAndValidateRequest decodes the JSON body into a T and validates it
// with shared.ValidateRequest. On failure it writes a 400 response and
// returns false.
func parseAndValidateRequest[T any](w http.ResponseWriter, r *http.Request, log *slog.Logger) (*T, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	var req T
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		HandleValidationError(w, r, err)
		return nil, false
	}

	return &req, true
}

// decodeRequest decodes the JSON body into a T without validation. On
// failure it writes a 400 response and returns false.
func decodeRequest[T any](w http.ResponseWriter, r *http.Request, log *slog.Logger) (*T, bool) {
	var req T
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}
	return &req, true
}
