package domain

import (
	"errors"
	"testing"
)

func validUser() *User {
	return &User{
		ID:       "u-1",
		Email:    "kim@example.com",
		FullName: "Kim Larsen",
		Role:     RoleStudent,
	}
}

func TestUser_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*User)
		wantFields []string
	}{
		{
			name:   "valid user",
			mutate: func(*User) {},
		},
		{
			name:       "missing email",
			mutate:     func(u *User) { u.Email = "  " },
			wantFields: []string{"email"},
		},
		{
			name:       "malformed email",
			mutate:     func(u *User) { u.Email = "not-an-address" },
			wantFields: []string{"email"},
		},
		{
			name:       "missing full name",
			mutate:     func(u *User) { u.FullName = "" },
			wantFields: []string{"full_name"},
		},
		{
			name:       "invalid role",
			mutate:     func(u *User) { u.Role = "superuser" },
			wantFields: []string{"role"},
		},
		{
			name:   "empty role is allowed",
			mutate: func(u *User) { u.Role = "" },
		},
		{
			name:       "multiple failures",
			mutate:     func(u *User) { u.Email = ""; u.FullName = "" },
			wantFields: []string{"email", "full_name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := validUser()
			tt.mutate(u)

			err := u.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Validate() = %v, want ErrValidation", err)
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error is not *ValidationError: %v", err)
			}
			for _, field := range tt.wantFields {
				if _, ok := verr.Fields[field]; !ok {
					t.Errorf("Fields missing %q, got %v", field, verr.Fields)
				}
			}
		})
	}
}

func TestUser_ValidateUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      User
		wantField string
	}{
		{
			name: "single field update passes",
			user: User{FullName: "Kim A. Larsen"},
		},
		{
			name: "valid email update passes",
			user: User{Email: "new@example.com"},
		},
		{
			name:      "empty update rejected",
			user:      User{},
			wantField: "user",
		},
		{
			name:      "malformed email rejected",
			user:      User{Email: "not-an-address"},
			wantField: "email",
		},
		{
			name:      "invalid role rejected",
			user:      User{Role: "superuser"},
			wantField: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.user.ValidateUpdate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateUpdate() = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("ValidateUpdate() error is not *ValidationError: %v", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields missing %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestUserRole_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role UserRole
		want bool
	}{
		{RoleStudent, true},
		{RoleExaminer, true},
		{RoleModerator, true},
		{"admin", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.role.IsValid(); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
