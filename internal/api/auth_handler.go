package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// Response messages of the auth endpoints.
const (
	msgAllFieldsRequired  = "All fields are required"
	msgPasswordsMismatch  = "Passwords do not match"
	msgUsernameTaken      = "Username is already taken"
	msgRegistered         = "Registered Successfully"
	msgInvalidCredentials = "Invalid credentials"
	msgLoginSuccessful    = "Login successful"
	msgWelcome            = "Welcome to dashboard"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /signup/.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := decodeRequest[SignupRequest](w, r, log)
	if !ok {
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	confirm := strings.TrimSpace(req.ConfirmPassword)

	if username == "" || email == "" || password == "" || confirm == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgAllFieldsRequired)
		return
	}

	if password != confirm {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgPasswordsMismatch)
		return
	}

	user, err := domain.NewUser(username, email, password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	exists, err := h.userStore.UsernameExists(r.Context(), user.Username)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}
	if exists {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgUsernameTaken)
		return
	}

	// The unique index still catches a concurrent signup for the same name.
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgUsernameTaken)
			return
		}
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	tokens, err := h.jwtService.IssueTokenPair(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, SignupResponse{
		Message: msgRegistered,
		Tokens:  tokens,
	})
}

// Login handles POST /login/. Unknown users and wrong passwords get the
// same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := decodeRequest[LoginRequest](w, r, log)
	if !ok {
		return
	}

	if req.Username == "" || req.Password == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidCredentials, err,
			shared.WithElevatedLogLevel())
		return
	}

	access, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	log.Debug("user logged in", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Access:   access,
		Username: user.Username,
		Message:  msgLoginSuccessful,
	})
}

// Home handles GET /home/. It must be mounted behind the auth middleware.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithMessage(w, r, http.StatusOK, msgWelcome)
}

// RefreshToken handles POST /token/refresh/ by minting a new access token
// for the identity carried in a valid refresh token.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := parseAndValidateRequest[RefreshTokenRequest](w, r, log)
	if !ok {
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.Refresh)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusUnauthorized {
			shared.RespondWithErrorAndLog(w, r, status, "Invalid refresh token", err)
			return
		}
		HandleAPIError(w, r, err, "Failed to refresh token")
		return
	}

	access, err := h.jwtService.GenerateToken(r.Context(), &domain.User{
		ID:       claims.UserID,
		Username: claims.Username,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{Access: access})
}
