package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Malformed path ids behave like unmatched routes
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, service.ErrResetEmailRequired),
		errors.Is(err, service.ErrResetDecode),
		errors.Is(err, service.ErrResetUserNotFound),
		errors.Is(err, service.ErrResetInvalidToken),
		errors.Is(err, service.ErrResetMissingPassword),
		errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		isUserFieldError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	// Password reset errors
	case errors.Is(err, service.ErrResetEmailRequired):
		return "Email is required"

	case errors.Is(err, service.ErrResetDecode),
		errors.Is(err, service.ErrResetUserNotFound):
		return "Invalid user"

	case errors.Is(err, service.ErrResetInvalidToken):
		return "Invalid or expired token"

	case errors.Is(err, service.ErrResetMissingPassword):
		return "Password is required"

	case errors.Is(err, service.ErrResetDelivery):
		return "Failed to send password reset email"

	// User field errors
	case errors.Is(err, domain.ErrPasswordTooLong):
		return fmt.Sprintf("Password must be at most %d characters", domain.MaxPasswordLength)

	case errors.Is(err, domain.ErrUsernameTooLong):
		return fmt.Sprintf("Username must be at most %d characters", domain.MaxUsernameLength)

	case errors.Is(err, domain.ErrEmailTooLong):
		return fmt.Sprintf("Email must be at most %d characters", domain.MaxEmailLength)

	case errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrEmptyPassword):
		return "All fields are required"

	// Not found errors
	case errors.Is(err, domain.ErrInvalidID):
		return "Not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "No user found"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	// Conflict errors
	case errors.Is(err, store.ErrUsernameExists):
		return "Username is already taken"

	// Validation errors carry a client-safe message
	case errors.As(err, &validationErr):
		return capitalize(validationErr.Error())

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status and safe message and writes the error
// response. For internal errors fallbackMessage, when not empty, replaces the
// generic message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// HandleValidationError writes a 400 response for a request struct that
// failed validation.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first failing field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return capitalize(validationErr.Error())
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min", "gte":
		return "too short"
	case "max", "lte":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

func isUserFieldError(err error) bool {
	for _, target := range []error{
		domain.ErrEmptyUsername,
		domain.ErrUsernameTooLong,
		domain.ErrEmptyEmail,
		domain.ErrEmailTooLong,
		domain.ErrEmptyPassword,
		domain.ErrPasswordTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
