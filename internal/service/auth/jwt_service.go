package auth

import (
	"context"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess        = "access"
	TokenTypeRefresh       = "refresh"
	TokenTypePasswordReset = "password_reset"
)

// TokenIssuer mints the token pair handed to a user on signup. Handlers
// depend on it rather than on a signing scheme.
type TokenIssuer interface {
	IssueTokenPair(ctx context.Context, user *domain.User) (TokenPair, error)
}

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	TokenIssuer

	// GenerateToken creates a signed JWT access token for the user.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken validates an access token and extracts its claims.
	// Returns ErrExpiredToken, ErrInvalidToken or ErrWrongTokenType on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token for the user.
	// Refresh tokens have a longer lifetime and are used to obtain new access tokens.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateRefreshToken validates a refresh token and extracts its claims.
	// Returns ErrExpiredRefreshToken, ErrInvalidRefreshToken or ErrWrongTokenType on failure.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
type Claims struct {
	// UserID is the numeric identifier of the user the token was issued for.
	UserID int64 `json:"uid,omitempty"`

	// Username is the user's login name at the time of issue.
	Username string `json:"username,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// TokenPair is the access/refresh pair returned on signup.
type TokenPair struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}
