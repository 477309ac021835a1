package ports

import (
	"context"

	"github.com/examstack/exam-bff/internal/domain"
)

// UserClient defines the client port for the downstream user service.
// Implemented by the ACL adapter; called by the application layer.
// Methods map 1:1 to user service endpoints using domain terminology.
type UserClient interface {
	// GetUser returns a single user by ID.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// CreateUser creates a new user and returns the created entity
	// with server-assigned fields (ID, timestamps).
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// UpdateUser updates an existing user and returns the updated entity.
	// Returns domain.ErrNotFound if the user does not exist.
	UpdateUser(ctx context.Context, id string, user *domain.User) (*domain.User, error)
}

// ExamClient defines the client port for the downstream exam service.
// Implemented by the ACL adapter; called by the application layer.
type ExamClient interface {
	// ListExams returns exams matching the given filter.
	// Pass a zero-value ExamFilter to list all exams.
	ListExams(ctx context.Context, filter ExamFilter) ([]domain.Exam, error)

	// GetExam returns a single exam by ID.
	// Returns domain.ErrNotFound if the exam does not exist.
	GetExam(ctx context.Context, id string) (*domain.Exam, error)

	// RegisterForExam registers a user for an exam and returns the created
	// registration.
	// Returns domain.ErrNotFound if the exam does not exist,
	// domain.ErrConflict if the user is already registered or the exam is full.
	RegisterForExam(ctx context.Context, examID, userID string) (*domain.Registration, error)

	// CancelRegistration cancels an exam registration.
	// Returns domain.ErrNotFound if the registration does not exist.
	CancelRegistration(ctx context.Context, examID, registrationID string) error

	// ListUserRegistrations returns all registrations for the given user.
	ListUserRegistrations(ctx context.Context, userID string) ([]domain.Registration, error)
}

// ExamFilter narrows ListExams results. Zero values mean "no constraint".
type ExamFilter struct {
	Subject string
	Status  domain.ExamStatus
}
