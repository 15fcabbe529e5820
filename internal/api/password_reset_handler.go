package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// Response messages and route parameters of the reset endpoints.
const (
	msgMailSent        = "Mail sent"
	msgResetMailFailed = "Failed to send password reset email"
	msgResetSuccess    = "Password reset success!"
	msgResetFailed     = "Failed to reset password"
	msgNoUserFound     = "No user found"
	ResetUIDParam      = "uidb64"
	ResetTokenParam    = "token"
)

// PasswordResetHandler serves the password reset endpoints.
type PasswordResetHandler struct {
	resetService service.PasswordResetService
	logger       *slog.Logger
}

// NewPasswordResetHandler creates a new PasswordResetHandler.
func NewPasswordResetHandler(resetService service.PasswordResetService, logger *slog.Logger) *PasswordResetHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PasswordResetHandler{
		resetService: resetService,
		logger:       logger.With(slog.String("component", "password_reset_handler")),
	}
}

// RequestReset handles POST /password-reset/.
func (h *PasswordResetHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := decodeRequest[PasswordResetRequest](w, r, log)
	if !ok {
		return
	}

	err := h.resetService.RequestReset(r.Context(), req.Email)
	switch {
	case err == nil:
		shared.RespondWithMessage(w, r, http.StatusOK, msgMailSent)
	case errors.Is(err, store.ErrUserNotFound):
		shared.RespondWithError(w, r, http.StatusNotFound, msgNoUserFound)
	case errors.Is(err, service.ErrResetEmailRequired):
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgResetMailFailed, err)
	}
}

// ConfirmReset handles POST /password-reset-confirm/{uidb64}/{token}/.
func (h *PasswordResetHandler) ConfirmReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := decodeRequest[PasswordResetConfirmRequest](w, r, log)
	if !ok {
		return
	}

	err := h.resetService.ConfirmReset(
		r.Context(),
		chi.URLParam(r, ResetUIDParam),
		chi.URLParam(r, ResetTokenParam),
		req.Password,
	)
	if err != nil {
		HandleAPIError(w, r, err, msgResetFailed)
		return
	}

	shared.RespondWithMessage(w, r, http.StatusOK, msgResetSuccess)
}
