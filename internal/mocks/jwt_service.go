package mocks

import (
	"context"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, user *domain.User) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// GenerateRefreshTokenFn allows test cases to mock the GenerateRefreshToken behavior
	GenerateRefreshTokenFn func(ctx context.Context, user *domain.User) (string, error)

	// ValidateRefreshTokenFn allows test cases to mock the ValidateRefreshToken behavior
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// IssueTokenPairFn allows test cases to mock the IssueTokenPair behavior
	IssueTokenPairFn func(ctx context.Context, user *domain.User) (auth.TokenPair, error)

	// Default values used when functions aren't explicitly defined
	Token         string
	RefreshToken  string
	Err           error
	ValidateErr   error
	Claims        *auth.Claims
	RefreshClaims *auth.Claims
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, user)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// GenerateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, user)
	}
	return m.RefreshToken, m.Err
}

// ValidateRefreshToken implements the auth.JWTService interface
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	if m.RefreshClaims != nil {
		return m.RefreshClaims, m.ValidateErr
	}
	return m.Claims, m.ValidateErr
}

// IssueTokenPair implements the auth.TokenIssuer interface.
// Without IssueTokenPairFn it combines GenerateToken and GenerateRefreshToken.
func (m *MockJWTService) IssueTokenPair(ctx context.Context, user *domain.User) (auth.TokenPair, error) {
	if m.IssueTokenPairFn != nil {
		return m.IssueTokenPairFn(ctx, user)
	}
	access, err := m.GenerateToken(ctx, user)
	if err != nil {
		return auth.TokenPair{}, err
	}
	refresh, err := m.GenerateRefreshToken(ctx, user)
	if err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{Refresh: refresh, Access: access}, nil
}
