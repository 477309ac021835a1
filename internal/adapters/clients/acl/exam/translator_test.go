package exam

import (
	"testing"
	"time"

	"github.com/examstack/exam-bff/internal/domain"
)

func TestToDomainExam(t *testing.T) {
	t.Parallel()

	dto := ExamDTO{
		ID:              "e-1",
		Title:           "Algorithms Final",
		Subject:         "algorithms",
		ScheduledAt:     "2026-09-10T10:00:00Z",
		DurationMinutes: 90,
		Capacity:        30,
		RegisteredCount: 30,
		Status:          "open",
	}

	e := ToDomainExam(&dto)

	if e.Duration != 90*time.Minute {
		t.Errorf("Duration = %v, want 90m", e.Duration)
	}
	if e.Status != domain.ExamOpen {
		t.Errorf("Status = %q, want open", e.Status)
	}
	if e.HasCapacity() {
		t.Error("HasCapacity() = true for a full exam, want false")
	}
}

func TestToDomainRegistrationList(t *testing.T) {
	t.Parallel()

	regs := ToDomainRegistrationList(RegistrationListResponseDTO{
		Registrations: []RegistrationDTO{
			{ID: "r-1", ExamID: "e-1", UserID: "u-1", Status: "confirmed", RegisteredAt: "2026-08-01T08:00:00Z"},
			{ID: "r-2", ExamID: "e-2", UserID: "u-1", Status: "waitlisted", RegisteredAt: "2026-08-02T08:00:00Z"},
		},
		Count: 2,
	})

	if len(regs) != 2 {
		t.Fatalf("len = %d, want 2", len(regs))
	}
	if regs[0].Status != domain.RegistrationConfirmed {
		t.Errorf("Status = %q, want confirmed", regs[0].Status)
	}
	if regs[1].Status != domain.RegistrationWaitlisted {
		t.Errorf("Status = %q, want waitlisted", regs[1].Status)
	}
}
