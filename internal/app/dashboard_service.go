package app

import (
	"context"
	"log/slog"

	"github.com/examstack/exam-bff/internal/app/fanout"
	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/ports"
)

// maxExamFetchWorkers bounds the concurrent exam lookups per dashboard request.
const maxExamFetchWorkers = 4

// Compile-time check that DashboardService implements ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

// DashboardService assembles the aggregated dashboard view: the user's
// profile, their registrations, and the exams behind them. Exam lookups fan
// out concurrently with partial success semantics; a single failed lookup
// marks that entry unavailable instead of failing the whole dashboard.
type DashboardService struct {
	userClient ports.UserClient
	examClient ports.ExamClient
	logger     *slog.Logger
}

// NewDashboardService creates a DashboardService. A nil logger is replaced
// with a no-op logger.
func NewDashboardService(userClient ports.UserClient, examClient ports.ExamClient, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DashboardService{
		userClient: userClient,
		examClient: examClient,
		logger:     logger,
	}
}

// GetDashboard returns the user's profile with their registrations and exam
// details. The user and registration lookups are hard requirements; exam
// detail lookups are best-effort.
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	s.logger.InfoContext(ctx, "assembling dashboard", slog.String("user_id", userID))

	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user for dashboard",
			slog.String("operation", "GetDashboard"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	regs, err := s.examClient.ListUserRegistrations(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list registrations for dashboard",
			slog.String("operation", "GetDashboard"),
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}

	results := fanout.Run(ctx, maxExamFetchWorkers, regs,
		func(ctx context.Context, reg domain.Registration) (*domain.Exam, error) {
			return s.examClient.GetExam(ctx, reg.ExamID)
		})

	details := make([]domain.RegistrationDetail, len(regs))
	for i, res := range results {
		details[i] = domain.RegistrationDetail{Registration: regs[i]}
		if res.Err != nil {
			s.logger.WarnContext(ctx, "exam details unavailable for dashboard entry",
				slog.String("exam_id", regs[i].ExamID),
				slog.Any("error", res.Err),
			)
			details[i].Unavailable = "exam details are temporarily unavailable"
			continue
		}
		details[i].Exam = res.Value
	}

	return &domain.Dashboard{
		User:          *user,
		Registrations: details,
	}, nil
}
