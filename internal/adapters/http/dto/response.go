// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/examstack/exam-bff/internal/domain"
)

// UserResponse represents a single user in HTTP responses.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// ExamResponse represents a single exam in HTTP responses.
type ExamResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Subject         string `json:"subject"`
	Description     string `json:"description,omitempty"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int64  `json:"duration_minutes"`
	Capacity        int    `json:"capacity"`
	Registered      int    `json:"registered"`
	Status          string `json:"status"`
	HasCapacity     bool   `json:"has_capacity"`
}

// ExamListResponse represents a list of exams in HTTP responses.
type ExamListResponse struct {
	Exams []ExamResponse `json:"exams"`
	Count int            `json:"count"`
}

// ToExamResponse converts a domain Exam entity to an HTTP response DTO.
func ToExamResponse(e *domain.Exam) ExamResponse {
	return ExamResponse{
		ID:              e.ID,
		Title:           e.Title,
		Subject:         e.Subject,
		Description:     e.Description,
		ScheduledAt:     e.ScheduledAt.Format(time.RFC3339),
		DurationMinutes: int64(e.Duration / time.Minute),
		Capacity:        e.Capacity,
		Registered:      e.Registered,
		Status:          e.Status.String(),
		HasCapacity:     e.HasCapacity(),
	}
}

// ToExamListResponse converts a slice of domain Exam entities to an HTTP
// list response DTO.
func ToExamListResponse(exams []domain.Exam) ExamListResponse {
	items := make([]ExamResponse, len(exams))
	for i := range exams {
		items[i] = ToExamResponse(&exams[i])
	}
	return ExamListResponse{
		Exams: items,
		Count: len(items),
	}
}

// RegistrationResponse represents a single exam registration in HTTP responses.
type RegistrationResponse struct {
	ID           string `json:"id"`
	ExamID       string `json:"exam_id"`
	UserID       string `json:"user_id"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registered_at"`
}

// ToRegistrationResponse converts a domain Registration entity to an HTTP
// response DTO.
func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		ExamID:       r.ExamID,
		UserID:       r.UserID,
		Status:       r.Status.String(),
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
	}
}

// DashboardResponse represents a user's aggregated dashboard in HTTP
// responses. Each entry carries either the exam details or a reason why
// they could not be fetched.
type DashboardResponse struct {
	User          UserResponse            `json:"user"`
	Registrations []DashboardRegistration `json:"registrations"`
}

// DashboardRegistration pairs a registration with its exam details. Exam is
// omitted and Unavailable populated when the exam lookup failed upstream.
type DashboardRegistration struct {
	Registration RegistrationResponse `json:"registration"`
	Exam         *ExamResponse        `json:"exam,omitempty"`
	Unavailable  string               `json:"unavailable,omitempty"`
}

// ToDashboardResponse converts a domain Dashboard entity to an HTTP
// response DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	regs := make([]DashboardRegistration, len(d.Registrations))
	for i := range d.Registrations {
		detail := &d.Registrations[i]
		entry := DashboardRegistration{
			Registration: ToRegistrationResponse(&detail.Registration),
			Unavailable:  detail.Unavailable,
		}
		if detail.Exam != nil {
			exam := ToExamResponse(detail.Exam)
			entry.Exam = &exam
		}
		regs[i] = entry
	}
	return DashboardResponse{
		User:          ToUserResponse(&d.User),
		Registrations: regs,
	}
}
