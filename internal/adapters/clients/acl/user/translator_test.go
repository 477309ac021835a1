package user

import (
	"testing"
	"time"

	"github.com/examstack/exam-bff/internal/domain"
)

func TestToDomainUser(t *testing.T) {
	t.Parallel()

	dto := UserDTO{
		ID:        "u-1",
		Email:     "kim@example.com",
		FullName:  "Kim Larsen",
		Role:      "examiner",
		CreatedAt: "2026-01-15T09:30:00Z",
		UpdatedAt: "2026-02-01T11:00:00Z",
	}

	u := ToDomainUser(&dto)

	if u.ID != "u-1" {
		t.Errorf("ID = %q, want u-1", u.ID)
	}
	if u.Role != domain.RoleExaminer {
		t.Errorf("Role = %q, want examiner", u.Role)
	}
	want := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	if !u.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", u.CreatedAt, want)
	}
}

func TestToDomainUser_BadTimestamp(t *testing.T) {
	t.Parallel()

	u := ToDomainUser(&UserDTO{ID: "u-1", CreatedAt: "yesterday"})
	if !u.CreatedAt.IsZero() {
		t.Errorf("CreatedAt = %v, want zero time for unparseable input", u.CreatedAt)
	}
}

func TestToUpdateUserRequest_AllFieldsSet(t *testing.T) {
	t.Parallel()

	dto := ToUpdateUserRequest(&domain.User{
		Email:    "kim@example.com",
		FullName: "Kim Larsen",
		Role:     domain.RoleStudent,
	})

	if dto.Email == nil || *dto.Email != "kim@example.com" {
		t.Errorf("Email = %v, want kim@example.com", dto.Email)
	}
	if dto.Role == nil || *dto.Role != "student" {
		t.Errorf("Role = %v, want student", dto.Role)
	}
}

func TestToUpdateUserRequest_OmitsZeroFields(t *testing.T) {
	t.Parallel()

	dto := ToUpdateUserRequest(&domain.User{FullName: "Kim Larsen"})

	if dto.Email != nil {
		t.Errorf("Email = %v, want nil for unset field", dto.Email)
	}
	if dto.FullName == nil || *dto.FullName != "Kim Larsen" {
		t.Errorf("FullName = %v, want Kim Larsen", dto.FullName)
	}
	if dto.Role != nil {
		t.Errorf("Role = %v, want nil for unset field", dto.Role)
	}
}
