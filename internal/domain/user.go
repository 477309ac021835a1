package domain

import (
	"net/mail"
	"strings"
	"time"
)

// msgRequired is the validation message for mandatory fields.
const msgRequired = "is required"

// User represents an account in the user service.
type User struct {
	ID        string
	Email     string
	FullName  string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRole represents the account type of a user.
type UserRole string

const (
	RoleStudent   UserRole = "student"
	RoleExaminer  UserRole = "examiner"
	RoleModerator UserRole = "moderator"
)

// IsValid returns true if the role is one of the defined constants.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleExaminer, RoleModerator:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// ValidateUpdate checks business rules for a partial user update. Zero
// fields mean "do not change" and are skipped, but at least one field must
// be provided. Returns a *ValidationError (wrapping ErrValidation) with
// per-field details, or nil if all rules pass.
func (u *User) ValidateUpdate() error {
	fields := make(map[string]string)

	if u.Email == "" && u.FullName == "" && u.Role == "" {
		fields["user"] = "at least one field must be provided"
	}
	if u.Email != "" {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			fields["email"] = "must be a valid email address"
		}
	}
	if u.Role != "" && !u.Role.IsValid() {
		fields["role"] = "invalid: " + string(u.Role)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks business rules for the User entity.
// Returns a *ValidationError (wrapping ErrValidation) with per-field details,
// or nil if all rules pass.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(u.Email) == "" {
		fields["email"] = msgRequired
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(u.FullName) == "" {
		fields["full_name"] = msgRequired
	}
	if u.Role != "" && !u.Role.IsValid() {
		fields["role"] = "invalid: " + string(u.Role)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
