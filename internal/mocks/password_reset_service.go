package mocks

import (
	"context"

	"github.com/phrazzld/todo-api/internal/service"
)

// MockPasswordResetService implements service.PasswordResetService for testing
type MockPasswordResetService struct {
	RequestResetFn func(ctx context.Context, email string) error
	ConfirmResetFn func(ctx context.Context, uidb64, token, password string) error

	// Err is returned by both methods when no function is set
	Err error
}

var _ service.PasswordResetService = (*MockPasswordResetService)(nil)

// RequestReset implements the service.PasswordResetService interface
func (m *MockPasswordResetService) RequestReset(ctx context.Context, email string) error {
	if m.RequestResetFn != nil {
		return m.RequestResetFn(ctx, email)
	}
	return m.Err
}

// ConfirmReset implements the service.PasswordResetService interface
func (m *MockPasswordResetService) ConfirmReset(ctx context.Context, uidb64, token, password string) error {
	if m.ConfirmResetFn != nil {
		return m.ConfirmResetFn(ctx, uidb64, token, password)
	}
	return m.Err
}
