package mail

import (
	"context"
	"errors"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers mail through an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	logger *slog.Logger
}

var _ Sender = (*SMTPSender)(nil)

// NewSMTPSender creates an SMTPSender. STARTTLS is negotiated when the
// server offers it; port 465 uses implicit TLS.
func NewSMTPSender(host string, port int, username, password string, logger *slog.Logger) *SMTPSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		logger: logger.With(slog.String("component", "smtp_sender")),
	}
}

// Send implements Sender. gomail has no context support, so ctx is only
// checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}

	if err := s.dialer.DialAndSend(buildMessage(msg)); err != nil {
		s.logger.Error("smtp delivery failed",
			slog.String("subject", msg.Subject),
			slog.Int("recipients", len(msg.To)))
		return errors.Join(ErrFailedToSend, err)
	}
	return nil
}

// buildMessage renders msg as MIME. With both bodies present the plain
// text part comes first and HTML is the preferred alternative.
func buildMessage(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}
	return m
}
