package api

import (
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/service/auth"
)

// SignupRequest defines the payload for the signup endpoint.
type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// SignupResponse defines the successful response for the signup endpoint.
type SignupResponse struct {
	Message string         `json:"message"`
	Tokens  auth.TokenPair `json:"tokens"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	Access   string `json:"access"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	Access string `json:"access"`
}

// PasswordResetRequest defines the payload for requesting a reset email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest defines the payload for setting a new password.
type PasswordResetConfirmRequest struct {
	Password string `json:"password"`
}

// TaskRequest is the body of task create, replace and patch requests.
// Absent fields decode to nil.
type TaskRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Priority    *int               `json:"priority"`
	Status      *domain.TaskStatus `json:"status"`
}

// toInput converts a create or replace body. Absent fields take their defaults.
func (req TaskRequest) toInput() service.TaskInput {
	in := service.TaskInput{Priority: req.Priority}
	if req.Title != nil {
		in.Title = *req.Title
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Status != nil {
		in.Status = *req.Status
	}
	return in
}

// toPatch converts a partial update body.
func (req TaskRequest) toPatch() service.TaskPatch {
	return service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	}
}
