package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// ResetTokenService issues and checks password reset tokens.
//
// A token is bound to one user and to that user's current password hash:
// once the password changes every outstanding token stops validating, which
// makes tokens single-use without any server-side state.
type ResetTokenService interface {
	// MakeToken returns a reset token for user.
	MakeToken(ctx context.Context, user *domain.User) (string, error)

	// CheckToken returns nil if token is a valid, unexpired reset token for
	// user, or ErrInvalidResetToken otherwise.
	CheckToken(ctx context.Context, user *domain.User, token string) error
}

type hmacResetTokenService struct {
	secret   []byte
	lifetime time.Duration
	timeFunc func() time.Time
}

var _ ResetTokenService = (*hmacResetTokenService)(nil)

// NewResetTokenService creates a ResetTokenService signing with cfg.JWTSecret
// and honouring cfg.PasswordResetTimeoutMinutes.
func NewResetTokenService(cfg config.AuthConfig) (ResetTokenService, error) {
	return newHMACResetTokenService(cfg, time.Now)
}

func newHMACResetTokenService(
	cfg config.AuthConfig,
	timeFunc func() time.Time,
) (*hmacResetTokenService, error) {
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", MinSecretLength)
	}
	if cfg.PasswordResetTimeoutMinutes <= 0 {
		return nil, fmt.Errorf("password reset timeout must be positive")
	}
	return &hmacResetTokenService{
		secret:   []byte(cfg.JWTSecret),
		lifetime: time.Duration(cfg.PasswordResetTimeoutMinutes) * time.Minute,
		timeFunc: timeFunc,
	}, nil
}

// key derives the per-user signing key.
func (s *hmacResetTokenService) key(user *domain.User) []byte {
	key := make([]byte, 0, len(s.secret)+len(user.HashedPassword))
	key = append(key, s.secret...)
	return append(key, user.HashedPassword...)
}

func (s *hmacResetTokenService) MakeToken(ctx context.Context, user *domain.User) (string, error) {
	if user == nil || user.HashedPassword == "" {
		return "", errors.New("reset token requires a stored user")
	}
	now := s.timeFunc()

	claims := jwtCustomClaims{
		UserID:    user.ID,
		TokenType: TokenTypePasswordReset,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key(user))
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign password reset token",
			"error", err,
			"user_id", user.ID)
		return "", fmt.Errorf("failed to sign password reset token: %w", err)
	}
	return signed, nil
}

func (s *hmacResetTokenService) CheckToken(ctx context.Context, user *domain.User, token string) error {
	if user == nil || token == "" {
		return ErrInvalidResetToken
	}
	now := s.timeFunc()

	var claims jwtCustomClaims
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (interface{}, error) { return s.key(user), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
		jwt.WithSubject(strconv.FormatInt(user.ID, 10)),
	)
	if err != nil {
		logger.FromContext(ctx).Debug("password reset token rejected",
			"error", err,
			"user_id", user.ID)
		return ErrInvalidResetToken
	}
	if claims.TokenType != TokenTypePasswordReset {
		return ErrInvalidResetToken
	}
	return nil
}
