package mocks

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
)

// MockResetTokenService implements auth.ResetTokenService for testing.
// By default MakeToken returns Token and CheckToken accepts only Token.
type MockResetTokenService struct {
	MakeTokenFn  func(ctx context.Context, user *domain.User) (string, error)
	CheckTokenFn func(ctx context.Context, user *domain.User, token string) error

	Token   string
	MakeErr error
}

var _ auth.ResetTokenService = (*MockResetTokenService)(nil)

// MakeToken implements the auth.ResetTokenService interface
func (m *MockResetTokenService) MakeToken(ctx context.Context, user *domain.User) (string, error) {
	if m.MakeTokenFn != nil {
		return m.MakeTokenFn(ctx, user)
	}
	return m.Token, m.MakeErr
}

// CheckToken implements the auth.ResetTokenService interface
func (m *MockResetTokenService) CheckToken(ctx context.Context, user *domain.User, token string) error {
	if m.CheckTokenFn != nil {
		return m.CheckTokenFn(ctx, user, token)
	}
	if token == "" || token != m.Token {
		return auth.ErrInvalidResetToken
	}
	return nil
}
