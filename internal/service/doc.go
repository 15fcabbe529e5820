// Package service contains the application use cases that sit between the
// HTTP handlers and the stores.
//
// TaskService wraps task persistence with creation defaults, full and partial
// updates, and validation. PasswordResetService runs the two halves of the
// password reset flow: RequestReset mails a signed link and ConfirmReset
// checks that link and stores the new password. Client-side failures of the
// reset flow are reported as the ErrReset* sentinels so the API layer can map
// each one to its own response.
//
// Services receive their dependencies through constructors and depend only
// on interfaces from internal/store, internal/service/auth and
// internal/platform/mail.
package service
