package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/ports"
)

// Compile-time check that ExamService implements ports.ExamService.
var _ ports.ExamService = (*ExamService)(nil)

// ExamService implements ports.ExamService by orchestrating calls to the
// downstream exam and user services. Registration verifies the user exists
// before touching the exam service; seat accounting itself stays downstream.
type ExamService struct {
	examClient ports.ExamClient
	userClient ports.UserClient
	logger     *slog.Logger
}

// NewExamService creates an ExamService. A nil logger is replaced with a
// no-op logger.
func NewExamService(examClient ports.ExamClient, userClient ports.UserClient, logger *slog.Logger) *ExamService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ExamService{
		examClient: examClient,
		userClient: userClient,
		logger:     logger,
	}
}

// ListExams returns exams matching the given filter.
func (s *ExamService) ListExams(ctx context.Context, filter ports.ExamFilter) ([]domain.Exam, error) {
	s.logger.InfoContext(ctx, "listing exams",
		slog.String("subject", filter.Subject),
		slog.String("status", filter.Status.String()),
	)

	exams, err := s.examClient.ListExams(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list exams",
			slog.String("operation", "ListExams"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return exams, nil
}

// GetExam returns a single exam by ID.
func (s *ExamService) GetExam(ctx context.Context, id string) (*domain.Exam, error) {
	s.logger.InfoContext(ctx, "fetching exam", slog.String("exam_id", id))

	exam, err := s.examClient.GetExam(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch exam",
			slog.String("operation", "GetExam"),
			slog.String("exam_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return exam, nil
}

// Register registers a user for an exam. The user is verified against the
// user service first so a typo'd user ID fails fast instead of creating a
// dangling registration downstream.
func (s *ExamService) Register(ctx context.Context, examID, userID string) (*domain.Registration, error) {
	s.logger.InfoContext(ctx, "registering user for exam",
		slog.String("exam_id", examID),
		slog.String("user_id", userID),
	)

	if _, err := s.userClient.GetUser(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to verify user",
			slog.String("operation", "Register"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("verifying user: %w", err)
	}

	reg, err := s.examClient.RegisterForExam(ctx, examID, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register for exam",
			slog.String("operation", "Register"),
			slog.String("exam_id", examID),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return reg, nil
}

// CancelRegistration cancels an exam registration.
func (s *ExamService) CancelRegistration(ctx context.Context, examID, registrationID string) error {
	s.logger.InfoContext(ctx, "cancelling registration",
		slog.String("exam_id", examID),
		slog.String("registration_id", registrationID),
	)

	if err := s.examClient.CancelRegistration(ctx, examID, registrationID); err != nil {
		s.logger.ErrorContext(ctx, "failed to cancel registration",
			slog.String("operation", "CancelRegistration"),
			slog.String("exam_id", examID),
			slog.String("registration_id", registrationID),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
