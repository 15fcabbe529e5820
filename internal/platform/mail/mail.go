// Package mail sends transactional email. Sender hides the transport:
// SMTP through gomail, the Postmark HTTP API, or the application log for
// local development.
package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/todo-api/internal/config"
)

var (
	// ErrFailedToSend wraps every transport failure.
	ErrFailedToSend = errors.New("failed to send email")
	// ErrInvalidConfig is returned when a sender cannot be built from configuration.
	ErrInvalidConfig = errors.New("invalid mail configuration")
	// ErrInvalidMessage is returned when a message is missing required parts.
	ErrInvalidMessage = errors.New("invalid email message")
)

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a transport-neutral email. At least one of TextBody and
// HTMLBody must be set.
type Message struct {
	From     string
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
	// Tag categorises the message for transports that support it.
	Tag string
}

// Validate reports whether msg can be handed to a transport.
func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.From) == "":
		return fmt.Errorf("%w: sender is required", ErrInvalidMessage)
	case len(m.To) == 0:
		return fmt.Errorf("%w: no recipients specified", ErrInvalidMessage)
	case strings.TrimSpace(m.Subject) == "":
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	case m.TextBody == "" && m.HTMLBody == "":
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}
	for _, to := range m.To {
		if strings.TrimSpace(to) == "" {
			return fmt.Errorf("%w: empty recipient", ErrInvalidMessage)
		}
	}
	return nil
}

// New builds the Sender selected by cfg.Transport.
func New(cfg config.MailConfig, logger *slog.Logger) (Sender, error) {
	switch cfg.Transport {
	case "smtp":
		if cfg.SMTPHost == "" || cfg.SMTPPort == 0 {
			return nil, fmt.Errorf("%w: smtp host and port are required", ErrInvalidConfig)
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, logger), nil
	case "postmark":
		return NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken, logger)
	case "log", "":
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("%w: unknown transport %q", ErrInvalidConfig, cfg.Transport)
	}
}
