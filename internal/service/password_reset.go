package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/platform/mail"
	"github.com/phrazzld/todo-api/internal/redact"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// PasswordResetService implements the two halves of the reset flow.
type PasswordResetService interface {
	// RequestReset emails a reset link to the oldest account registered
	// with email. Returns store.ErrUserNotFound when there is none and
	// ErrResetDelivery when the mail transport fails.
	RequestReset(ctx context.Context, email string) error

	// ConfirmReset validates the encoded user id and token from a reset
	// link and replaces the user's password.
	ConfirmReset(ctx context.Context, uidb64, token, password string) error
}

// PasswordResetConfig holds the mail settings the reset flow needs.
type PasswordResetConfig struct {
	// FromEmail is the sender address of reset emails.
	FromEmail string
	// FrontendURL is the origin reset links point at.
	FrontendURL string
}

type passwordResetService struct {
	users  store.UserStore
	tokens auth.ResetTokenService
	sender mail.Sender
	cfg    PasswordResetConfig
	logger *slog.Logger
}

var _ PasswordResetService = (*passwordResetService)(nil)

// NewPasswordResetService creates a PasswordResetService.
// It returns an error if any dependency is nil.
func NewPasswordResetService(
	users store.UserStore,
	tokens auth.ResetTokenService,
	sender mail.Sender,
	cfg PasswordResetConfig,
	logger *slog.Logger,
) (PasswordResetService, error) {
	if users == nil || tokens == nil || sender == nil {
		return nil, errors.New("password reset service requires user store, token service and mail sender")
	}
	if cfg.FromEmail == "" || cfg.FrontendURL == "" {
		return nil, errors.New("password reset service requires a sender address and frontend url")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &passwordResetService{
		users:  users,
		tokens: tokens,
		sender: sender,
		cfg:    cfg,
		logger: logger.With("component", "password_reset_service"),
	}, nil
}

// ResetLink builds the frontend URL a user follows to choose a new password.
func ResetLink(frontendURL, uid, token string) string {
	return fmt.Sprintf("%s/reset-password/%s/%s/", strings.TrimRight(frontendURL, "/"), uid, token)
}

func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	email = strings.TrimSpace(email)
	if email == "" {
		return ErrResetEmailRequired
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("password reset requested for unknown email")
			return err
		}
		return fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	token, err := s.tokens.MakeToken(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to create password reset token: %w", err)
	}

	msg, err := mail.PasswordResetMessage(s.cfg.FromEmail, user.Email, mail.PasswordResetData{
		Username:  user.Username,
		ResetLink: ResetLink(s.cfg.FrontendURL, auth.EncodeUID(user.ID), token),
	})
	if err != nil {
		return err
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		log.Error("failed to send password reset email",
			"user_id", user.ID,
			"error", redact.Error(err))
		return fmt.Errorf("%w: %w", ErrResetDelivery, err)
	}

	log.Info("password reset email sent", "user_id", user.ID)
	return nil
}

func (s *passwordResetService) ConfirmReset(ctx context.Context, uidb64, token, password string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	id, err := auth.DecodeUID(uidb64)
	if err != nil {
		return ErrResetDecode
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return ErrResetUserNotFound
		}
		return fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	if err := s.tokens.CheckToken(ctx, user, token); err != nil {
		log.Debug("password reset token rejected", "user_id", user.ID)
		return ErrResetInvalidToken
	}

	if password == "" {
		return ErrResetMissingPassword
	}
	if err := domain.ValidatePassword(password); err != nil {
		return err
	}

	user.Password = password
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	log.Info("password reset completed", "user_id", user.ID)
	return nil
}
