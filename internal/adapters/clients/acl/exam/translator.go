package exam

import (
	"time"

	"github.com/examstack/exam-bff/internal/domain"
)

// ToDomainExam converts a downstream ExamDTO to a domain Exam entity.
// Wire minutes become a time.Duration; RFC3339 timestamps that fail to
// parse become zero times.
func ToDomainExam(dto *ExamDTO) domain.Exam {
	scheduledAt, _ := time.Parse(time.RFC3339, dto.ScheduledAt)

	return domain.Exam{
		ID:          dto.ID,
		Title:       dto.Title,
		Subject:     dto.Subject,
		Description: dto.Description,
		ScheduledAt: scheduledAt,
		Duration:    time.Duration(dto.DurationMinutes) * time.Minute,
		Capacity:    int(dto.Capacity),
		Registered:  int(dto.RegisteredCount),
		Status:      domain.ExamStatus(dto.Status),
	}
}

// ToDomainExamList converts a downstream ExamListResponseDTO to a slice of
// domain Exam entities.
func ToDomainExamList(dto ExamListResponseDTO) []domain.Exam {
	exams := make([]domain.Exam, len(dto.Exams))
	for i := range dto.Exams {
		exams[i] = ToDomainExam(&dto.Exams[i])
	}
	return exams
}

// ToDomainRegistration converts a downstream RegistrationDTO to a domain
// Registration entity.
func ToDomainRegistration(dto *RegistrationDTO) domain.Registration {
	registeredAt, _ := time.Parse(time.RFC3339, dto.RegisteredAt)

	return domain.Registration{
		ID:           dto.ID,
		ExamID:       dto.ExamID,
		UserID:       dto.UserID,
		Status:       domain.RegistrationStatus(dto.Status),
		RegisteredAt: registeredAt,
	}
}

// ToDomainRegistrationList converts a downstream RegistrationListResponseDTO
// to a slice of domain Registration entities.
func ToDomainRegistrationList(dto RegistrationListResponseDTO) []domain.Registration {
	regs := make([]domain.Registration, len(dto.Registrations))
	for i := range dto.Registrations {
		regs[i] = ToDomainRegistration(&dto.Registrations[i])
	}
	return regs
}
