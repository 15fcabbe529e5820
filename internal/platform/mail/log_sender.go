package mail

import (
	"context"
	"log/slog"
	"strings"
)

// LogSender writes messages to the application log instead of sending
// them. It is meant for local development. Bodies can hold live reset links,
// so they are only logged at debug level.
type LogSender struct {
	logger *slog.Logger
}

var _ Sender = (*LogSender)(nil)

// NewLogSender creates a LogSender.
func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "log_sender"))
	logger.Warn("log mail transport enabled: messages are logged, not delivered")
	return &LogSender{logger: logger}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	body := msg.TextBody
	if body == "" {
		body = StripTags(msg.HTMLBody)
	}
	s.logger.InfoContext(ctx, "email not sent (log transport)",
		slog.String("from", msg.From),
		slog.String("to", strings.Join(msg.To, ",")),
		slog.String("subject", msg.Subject))
	s.logger.DebugContext(ctx, "email body (log transport)",
		slog.String("subject", msg.Subject),
		slog.String("body", body))
	return nil
}
