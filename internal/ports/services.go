package ports

import (
	"context"

	"github.com/examstack/exam-bff/internal/domain"
)

// ExamService defines the service port for exam and registration operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ExamService interface {
	// ListExams returns exams matching the given filter.
	ListExams(ctx context.Context, filter ExamFilter) ([]domain.Exam, error)

	// GetExam returns a single exam by ID.
	// Returns domain.ErrNotFound if the exam does not exist.
	GetExam(ctx context.Context, id string) (*domain.Exam, error)

	// Register registers a user for an exam after verifying both exist.
	// Returns domain.ErrNotFound if the exam or user does not exist,
	// domain.ErrConflict if the exam is full or the user already registered.
	Register(ctx context.Context, examID, userID string) (*domain.Registration, error)

	// CancelRegistration cancels an exam registration.
	// Returns domain.ErrNotFound if the registration does not exist.
	CancelRegistration(ctx context.Context, examID, registrationID string) error
}

// UserService defines the service port for user profile operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type UserService interface {
	// GetUser returns a single user by ID.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// CreateUser validates and creates a new user.
	// Returns domain.ErrValidation if the user fails validation.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// UpdateUser validates and updates an existing user.
	// Returns domain.ErrNotFound if the user does not exist.
	UpdateUser(ctx context.Context, id string, user *domain.User) (*domain.User, error)
}

// DashboardService assembles the aggregated client-facing dashboard view.
// Implemented by the application layer; called by inbound adapters (handlers).
type DashboardService interface {
	// GetDashboard returns the user's profile together with their
	// registrations and the exams behind them. Exam lookups use partial
	// success semantics: a failed lookup marks that entry unavailable
	// instead of failing the whole dashboard.
	// Returns domain.ErrNotFound if the user does not exist.
	GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
}
