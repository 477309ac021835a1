package dto_test

import (
	"errors"
	"testing"

	"github.com/examstack/exam-bff/internal/adapters/http/dto"
	"github.com/examstack/exam-bff/internal/domain"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateUserRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.CreateUserRequest{
				Email:    "kim@example.com",
				FullName: "Kim Larsen",
			},
			wantErr: false,
		},
		{
			name: "valid request with role",
			req: dto.CreateUserRequest{
				Email:    "kim@example.com",
				FullName: "Kim Larsen",
				Role:     "examiner",
			},
			wantErr: false,
		},
		{
			name: "empty email fails",
			req: dto.CreateUserRequest{
				Email:    "",
				FullName: "Kim Larsen",
			},
			wantErr:   true,
			wantField: "email",
		},
		{
			name: "malformed email fails",
			req: dto.CreateUserRequest{
				Email:    "not-an-address",
				FullName: "Kim Larsen",
			},
			wantErr:   true,
			wantField: "email",
		},
		{
			name: "whitespace-only full name fails",
			req: dto.CreateUserRequest{
				Email:    "kim@example.com",
				FullName: "   ",
			},
			wantErr:   true,
			wantField: "full_name",
		},
		{
			name: "invalid role fails",
			req: dto.CreateUserRequest{
				Email:    "kim@example.com",
				FullName: "Kim Larsen",
				Role:     "admin",
			},
			wantErr:   true,
			wantField: "role",
		},
		{
			name: "empty role passes (optional)",
			req: dto.CreateUserRequest{
				Email:    "kim@example.com",
				FullName: "Kim Larsen",
				Role:     "",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCreateUserRequest_Validate_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := dto.CreateUserRequest{
		Email:    "",
		FullName: "",
		Role:     "bad",
	}

	err := req.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error with multiple failures")
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}

	expectedFields := []string{"email", "full_name", "role"}
	for _, field := range expectedFields {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
		}
	}

	if len(verr.Fields) != len(expectedFields) {
		t.Errorf("ValidationError.Fields has %d entries, want %d", len(verr.Fields), len(expectedFields))
	}
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateUserRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "all nil passes (no-op update)",
			req:     dto.UpdateUserRequest{},
			wantErr: false,
		},
		{
			name:    "valid email passes",
			req:     dto.UpdateUserRequest{Email: stringPtr("new@example.com")},
			wantErr: false,
		},
		{
			name:      "empty email fails",
			req:       dto.UpdateUserRequest{Email: stringPtr("")},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "malformed email fails",
			req:       dto.UpdateUserRequest{Email: stringPtr("not-an-address")},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:    "valid full name passes",
			req:     dto.UpdateUserRequest{FullName: stringPtr("New Name")},
			wantErr: false,
		},
		{
			name:      "whitespace-only full name fails",
			req:       dto.UpdateUserRequest{FullName: stringPtr("  ")},
			wantErr:   true,
			wantField: "full_name",
		},
		{
			name:    "valid role passes",
			req:     dto.UpdateUserRequest{Role: stringPtr("moderator")},
			wantErr: false,
		},
		{
			name:      "invalid role fails",
			req:       dto.UpdateUserRequest{Role: stringPtr("bad")},
			wantErr:   true,
			wantField: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request passes",
			req:     dto.RegisterRequest{UserID: "u-1"},
			wantErr: false,
		},
		{
			name:      "empty user id fails",
			req:       dto.RegisterRequest{UserID: ""},
			wantErr:   true,
			wantField: "user_id",
		},
		{
			name:      "whitespace-only user id fails",
			req:       dto.RegisterRequest{UserID: "   "},
			wantErr:   true,
			wantField: "user_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
