package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

// PasswordResetSubject is the subject line of the reset email.
const PasswordResetSubject = "Password Reset Request"

//go:embed templates/*.html
var templateFiles embed.FS

var templates = template.Must(template.ParseFS(templateFiles, "templates/*.html"))

// PasswordResetData feeds the password reset template.
type PasswordResetData struct {
	Username  string
	ResetLink string
}

// PasswordResetMessage renders the password reset email for one recipient.
// The plain text part is the HTML with tags stripped.
func PasswordResetMessage(from, to string, data PasswordResetData) (Message, error) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "password_reset.html", struct {
		PasswordResetData
		Subject string
	}{data, PasswordResetSubject})
	if err != nil {
		return Message{}, fmt.Errorf("failed to render password reset email: %w", err)
	}

	htmlBody := buf.String()
	return Message{
		From:     from,
		To:       []string{to},
		Subject:  PasswordResetSubject,
		HTMLBody: htmlBody,
		TextBody: StripTags(htmlBody),
		Tag:      "password-reset",
	}, nil
}
