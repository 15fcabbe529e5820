package config

// Config holds all application configuration.
// It is loaded once at process start and passed explicitly to the
// components that need it.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Mail     MailConfig     `mapstructure:"mail"     validate:"required"`
	Tasks    TasksConfig    `mapstructure:"tasks"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                int    `mapstructure:"port"                  validate:"required,gt=0,lt=65536"`
	LogLevel            string `mapstructure:"log_level"             validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"  validate:"gte=0"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" validate:"gte=0"`
	IdleTimeoutSeconds  int    `mapstructure:"idle_timeout_seconds"  validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the storage backend.
	Driver string `mapstructure:"driver"         validate:"required,oneof=postgres sqlite"`
	// URL is a postgres connection string, or a file path / DSN for sqlite.
	URL          string `mapstructure:"url"            validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                    string `mapstructure:"jwt_secret"                      validate:"required,min=32"`
	TokenLifetimeMinutes         int    `mapstructure:"token_lifetime_minutes"          validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes  int    `mapstructure:"refresh_token_lifetime_minutes"  validate:"required,gt=0"`
	PasswordResetTimeoutMinutes  int    `mapstructure:"password_reset_timeout_minutes"  validate:"required,gt=0"`
	BcryptCost                   int    `mapstructure:"bcrypt_cost"                     validate:"required,gte=4,lte=31"`
}

// MailConfig contains outbound email settings.
type MailConfig struct {
	// Transport selects how mail leaves the process: smtp, postmark, or log
	// (log writes messages to the application log and sends nothing).
	Transport        string `mapstructure:"transport"          validate:"required,oneof=smtp postmark log"`
	DefaultFromEmail string `mapstructure:"default_from_email" validate:"required,email"`
	// FrontendURL is the origin reset links point at.
	FrontendURL string `mapstructure:"frontend_url" validate:"required,url"`

	SMTPHost     string `mapstructure:"smtp_host"     validate:"required_if=Transport smtp"`
	SMTPPort     int    `mapstructure:"smtp_port"     validate:"required_if=Transport smtp,gte=0,lt=65536"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`

	PostmarkServerToken  string `mapstructure:"postmark_server_token"  validate:"required_if=Transport postmark"`
	PostmarkAccountToken string `mapstructure:"postmark_account_token"`
}

// TasksConfig contains settings for the task endpoints.
type TasksConfig struct {
	// RequireAuth puts the /tasks routes behind bearer authentication.
	RequireAuth bool `mapstructure:"require_auth"`
}
