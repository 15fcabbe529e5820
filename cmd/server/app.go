package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/mail"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *appDatabase

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService           auth.JWTService
	passwordVerifier     auth.PasswordVerifier
	resetTokens          auth.ResetTokenService
	mailSender           mail.Sender
	taskService          service.TaskService
	passwordResetService service.PasswordResetService
}

// newApplication creates a new application instance with all dependencies
// initialized. The database connection and mail sender are established by
// the caller.
func newApplication(
	cfg *config.Config,
	logger *slog.Logger,
	database *appDatabase,
	sender mail.Sender,
) (*application, error) {
	app := &application{
		config:     cfg,
		logger:     logger,
		db:         database,
		mailSender: sender,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"refresh_token_lifetime_minutes", cfg.Auth.RefreshTokenLifetimeMinutes)

	app.resetTokens, err = auth.NewResetTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize reset token service: %w", err)
	}

	app.passwordVerifier = auth.NewBcryptVerifier()

	switch database.driver {
	case "sqlite":
		app.userStore = sqlite.NewUserStore(database.db, cfg.Auth.BcryptCost, logger)
		app.taskStore = sqlite.NewTaskStore(database.db, logger)
	default:
		app.userStore = postgres.NewPostgresUserStore(database.db, cfg.Auth.BcryptCost, logger)
		app.taskStore = postgres.NewPostgresTaskStore(database.db, logger)
	}

	app.taskService, err = service.NewTaskService(app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.passwordResetService, err = service.NewPasswordResetService(
		app.userStore,
		app.resetTokens,
		app.mailSender,
		service.PasswordResetConfig{
			FromEmail:   cfg.Mail.DefaultFromEmail,
			FrontendURL: cfg.Mail.FrontendURL,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create password reset service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupMailSender builds the outbound mail transport selected in config.
func setupMailSender(cfg config.MailConfig, logger *slog.Logger) (mail.Sender, error) {
	sender, err := mail.New(cfg, logger.With("component", "mail"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mail sender: %w", err)
	}
	logger.Info("Mail sender initialized", "transport", cfg.Transport)
	return sender, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}

	app.logger.Info("Application shutdown completed")
}
