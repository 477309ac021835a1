// Package exam implements the Anti-Corruption Layer translators for the
// downstream exam service's resources.
package exam

// ExamDTO matches the downstream Exam schema. Duration is expressed in
// minutes on the wire.
type ExamDTO struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Subject         string `json:"subject"`
	Description     string `json:"description"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int64  `json:"duration_minutes"`
	Capacity        int64  `json:"capacity"`
	RegisteredCount int64  `json:"registered_count"`
	Status          string `json:"status"`
}

// ExamListResponseDTO matches the downstream ExamListResponse schema.
type ExamListResponseDTO struct {
	Exams []ExamDTO `json:"exams"`
	Count int64     `json:"count"`
}

// RegistrationDTO matches the downstream Registration schema.
type RegistrationDTO struct {
	ID           string `json:"id"`
	ExamID       string `json:"exam_id"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registered_at"`
}

// RegistrationListResponseDTO matches the downstream RegistrationListResponse
// schema.
type RegistrationListResponseDTO struct {
	Registrations []RegistrationDTO `json:"registrations"`
	Count         int64             `json:"count"`
}

// RegisterRequestDTO matches the downstream RegisterRequest schema.
type RegisterRequestDTO struct {
	UserID string `json:"user_id"`
}
