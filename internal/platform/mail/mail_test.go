package mail

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMessage() Message {
	return Message{
		From:     "noreply@example.com",
		To:       []string{"user@example.com"},
		Subject:  "Hello",
		TextBody: "hi",
	}
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(m *Message)
		valid  bool
	}{
		{name: "valid", mutate: func(m *Message) {}, valid: true},
		{name: "html only", mutate: func(m *Message) { m.TextBody = ""; m.HTMLBody = "<p>hi</p>" }, valid: true},
		{name: "missing from", mutate: func(m *Message) { m.From = "" }},
		{name: "no recipients", mutate: func(m *Message) { m.To = nil }},
		{name: "blank recipient", mutate: func(m *Message) { m.To = []string{" "} }},
		{name: "missing subject", mutate: func(m *Message) { m.Subject = "" }},
		{name: "missing body", mutate: func(m *Message) { m.TextBody = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			tt.mutate(&msg)
			err := msg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidMessage)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MailConfig
		want    any
		wantErr bool
	}{
		{name: "log", cfg: config.MailConfig{Transport: "log"}, want: &LogSender{}},
		{
			name: "smtp",
			cfg:  config.MailConfig{Transport: "smtp", SMTPHost: "localhost", SMTPPort: 1025},
			want: &SMTPSender{},
		},
		{name: "smtp without host", cfg: config.MailConfig{Transport: "smtp"}, wantErr: true},
		{
			name: "postmark",
			cfg:  config.MailConfig{Transport: "postmark", PostmarkServerToken: "server-token"},
			want: &PostmarkSender{},
		},
		{name: "postmark without token", cfg: config.MailConfig{Transport: "postmark"}, wantErr: true},
		{name: "unknown", cfg: config.MailConfig{Transport: "pigeon"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := New(tt.cfg, nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, sender)
		})
	}
}

func TestLogSender(t *testing.T) {
	l, buf := logger.NewBufferLogger()
	sender := NewLogSender(l)

	msg := validMessage()
	msg.TextBody = ""
	msg.HTMLBody = "<p>Reset at <a href=\"http://x\">http://x</a></p>"
	require.NoError(t, sender.Send(context.Background(), msg))

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "WARN", entries[0]["level"])

	assert.Equal(t, "INFO", entries[1]["level"])
	assert.Equal(t, "user@example.com", entries[1]["to"])
	assert.Equal(t, "Hello", entries[1]["subject"])
	assert.NotContains(t, entries[1], "body")

	assert.Equal(t, "DEBUG", entries[2]["level"])
	assert.Equal(t, "Reset at http://x", entries[2]["body"])

	assert.ErrorIs(t, sender.Send(context.Background(), Message{}), ErrInvalidMessage)
}

func TestLogSenderKeepsBodyOutOfInfoLogs(t *testing.T) {
	var out strings.Builder
	sender := NewLogSender(logger.New(&out, "info"))

	msg := validMessage()
	msg.TextBody = "Reset at http://localhost:3000/reset-password/MQ/abc.def.ghi/"
	require.NoError(t, sender.Send(context.Background(), msg))

	assert.Contains(t, out.String(), "email not sent (log transport)")
	assert.Contains(t, out.String(), "messages are logged, not delivered")
	assert.NotContains(t, out.String(), "reset-password")
}

func TestSMTPSenderHonoursCancelledContext(t *testing.T) {
	sender := NewSMTPSender("localhost", 1, "", "", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, validMessage())
	assert.ErrorIs(t, err, ErrFailedToSend)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildMessageMultipart(t *testing.T) {
	msg := validMessage()
	msg.HTMLBody = "<p>hi</p>"

	m := buildMessage(msg)
	assert.Equal(t, []string{"noreply@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"user@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, m.GetHeader("Subject"))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Send(context.Background(), validMessage()))
	require.Len(t, r.Messages(), 1)

	r.Err = errors.New("smtp down")
	assert.EqualError(t, r.Send(context.Background(), validMessage()), "smtp down")
	assert.Len(t, r.Messages(), 1)
}

func TestPasswordResetMessage(t *testing.T) {
	link := "http://localhost:3000/reset-password/MQ/abc.def-ghi_jkl/"
	msg, err := PasswordResetMessage("noreply@example.com", "bob@example.com", PasswordResetData{
		Username:  "bob <admin>",
		ResetLink: link,
	})
	require.NoError(t, err)

	assert.Equal(t, PasswordResetSubject, msg.Subject)
	assert.Equal(t, []string{"bob@example.com"}, msg.To)
	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Contains(t, msg.HTMLBody, `href="`+link+`"`)
	assert.Contains(t, msg.HTMLBody, "bob &lt;admin&gt;")
	assert.Contains(t, msg.TextBody, "Hello bob <admin>,")
	assert.Contains(t, msg.TextBody, link)
	assert.NotContains(t, msg.TextBody, "<p>")
	assert.NotContains(t, msg.TextBody, "font-family")
	require.NoError(t, msg.Validate())
}
