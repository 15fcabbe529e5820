package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers mail through Postmark's transactional API.
type PostmarkSender struct {
	client *postmark.Client
	logger *slog.Logger
}

var _ Sender = (*PostmarkSender)(nil)

// NewPostmarkSender creates a PostmarkSender. The server token is required;
// the account token is only needed for account-level API calls.
func NewPostmarkSender(serverToken, accountToken string, logger *slog.Logger) (*PostmarkSender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: postmark server token is required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostmarkSender{
		client: postmark.NewClient(serverToken, accountToken),
		logger: logger.With(slog.String("component", "postmark_sender")),
	}, nil
}

// Send implements Sender.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.From,
		To:         strings.Join(msg.To, ","),
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTMLBody,
		TextBody:   msg.TextBody,
		TrackOpens: false,
	})
	if err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	if resp.ErrorCode > 0 {
		s.logger.Error("postmark rejected message",
			slog.Any("error_code", resp.ErrorCode),
			slog.String("subject", msg.Subject))
		return errors.Join(
			ErrFailedToSend,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
