package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the password reset flow.
//
// ConfirmReset reports each client-side failure as exactly one of these so
// the API layer can map it to a distinct message. Anything else coming out of
// the service is an internal fault and should be reported as a 500.
var (
	// ErrResetEmailRequired indicates RequestReset was called without an email.
	ErrResetEmailRequired = errors.New("password reset: email is required")

	// ErrResetDelivery indicates the reset email could not be dispatched.
	// The transport error is wrapped alongside it.
	ErrResetDelivery = errors.New("password reset: email delivery failed")

	// ErrResetDecode indicates the encoded user id in a reset link is malformed.
	ErrResetDecode = errors.New("password reset: undecodable user id")

	// ErrResetUserNotFound indicates the decoded user id matches no user.
	ErrResetUserNotFound = errors.New("password reset: user not found")

	// ErrResetInvalidToken indicates the token is invalid, expired or already used.
	ErrResetInvalidToken = errors.New("password reset: invalid or expired token")

	// ErrResetMissingPassword indicates no new password was supplied.
	ErrResetMissingPassword = errors.New("password reset: password is required")
)

// TaskServiceError is returned when the task service fails for a reason
// other than validation or a missing task.
type TaskServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
func NewTaskServiceError(operation, message string, err error) *TaskServiceError {
	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
