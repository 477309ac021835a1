package dto

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/examstack/exam-bff/internal/domain"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// CreateUserRequest represents the JSON body for creating a new user account.
type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateUserRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(r.FullName) == "" {
		fields["full_name"] = msgRequired
	}
	if r.Role != "" && !domain.UserRole(r.Role).IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", r.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateUserRequest represents the JSON body for updating an existing user.
// All fields are optional; nil means "do not change this field.".
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateUserRequest) Validate() error {
	fields := make(map[string]string)

	if r.Email != nil {
		if strings.TrimSpace(*r.Email) == "" {
			fields["email"] = msgMustNotEmpty
		} else if _, err := mail.ParseAddress(*r.Email); err != nil {
			fields["email"] = "must be a valid email address"
		}
	}
	if r.FullName != nil && strings.TrimSpace(*r.FullName) == "" {
		fields["full_name"] = msgMustNotEmpty
	}
	if r.Role != nil && !domain.UserRole(*r.Role).IsValid() {
		fields["role"] = fmt.Sprintf("invalid: %q", *r.Role)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RegisterRequest represents the JSON body for registering a user for an exam.
type RegisterRequest struct {
	UserID string `json:"user_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.UserID) == "" {
		fields["user_id"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
