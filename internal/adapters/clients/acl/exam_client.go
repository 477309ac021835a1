package acl

import (
	"context"
	"net/url"

	"github.com/examstack/exam-bff/internal/adapters/clients/acl/exam"
	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/ports"
	"github.com/examstack/exam-bff/internal/upstream"
)

// Compile-time interface check.
var _ ports.ExamClient = (*ExamClient)(nil)

// ExamClient is the outbound adapter for the downstream exam service. It
// implements [ports.ExamClient].
//
// All methods translate between domain types and the downstream wire format
// via the [exam] translators. Failed calls are mapped to domain errors by
// [TranslateError].
type ExamClient struct {
	facade *upstream.Facade
}

// NewExamClient creates an ExamClient that dispatches through the given facade.
func NewExamClient(facade *upstream.Facade) *ExamClient {
	return &ExamClient{facade: facade}
}

// ListExams fetches exams via the listExams endpoint, optionally filtered by
// subject and status.
func (c *ExamClient) ListExams(ctx context.Context, filter ports.ExamFilter) ([]domain.Exam, error) {
	var dto exam.ExamListResponseDTO
	_, err := c.facade.Get(ctx, "listExams", upstream.CallOptions{
		Query: filterQuery(filter),
	}, &dto)
	if err != nil {
		return nil, TranslateError(err)
	}
	return exam.ToDomainExamList(dto), nil
}

// GetExam fetches a single exam by ID via the getExam endpoint.
// Returns [domain.ErrNotFound] if the downstream returns 404.
func (c *ExamClient) GetExam(ctx context.Context, id string) (*domain.Exam, error) {
	var dto exam.ExamDTO
	_, err := c.facade.Get(ctx, "getExam", upstream.CallOptions{
		PathParams: map[string]string{"id": id},
	}, &dto)
	if err != nil {
		return nil, TranslateError(err)
	}

	result := exam.ToDomainExam(&dto)
	return &result, nil
}

// RegisterForExam creates a registration via the registerForExam endpoint.
// Returns [domain.ErrNotFound] if the exam does not exist and
// [domain.ErrConflict] if the exam is full or the user already registered.
func (c *ExamClient) RegisterForExam(ctx context.Context, examID, userID string) (*domain.Registration, error) {
	var dto exam.RegistrationDTO
	_, err := c.facade.Post(ctx, "registerForExam", upstream.CallOptions{
		PathParams: map[string]string{"examId": examID},
		Body:       exam.RegisterRequestDTO{UserID: userID},
	}, &dto)
	if err != nil {
		return nil, TranslateError(err)
	}

	result := exam.ToDomainRegistration(&dto)
	return &result, nil
}

// CancelRegistration cancels a registration via the cancelRegistration
// endpoint. The downstream answers 204 on success.
// Returns [domain.ErrNotFound] if the registration does not exist.
func (c *ExamClient) CancelRegistration(ctx context.Context, examID, registrationID string) error {
	_, err := c.facade.Delete(ctx, "cancelRegistration", upstream.CallOptions{
		PathParams: map[string]string{"examId": examID, "id": registrationID},
	}, nil)
	return TranslateError(err)
}

// ListUserRegistrations fetches all registrations for a user via the
// listUserRegistrations endpoint.
func (c *ExamClient) ListUserRegistrations(ctx context.Context, userID string) ([]domain.Registration, error) {
	var dto exam.RegistrationListResponseDTO
	_, err := c.facade.Get(ctx, "listUserRegistrations", upstream.CallOptions{
		PathParams: map[string]string{"userId": userID},
	}, &dto)
	if err != nil {
		return nil, TranslateError(err)
	}
	return exam.ToDomainRegistrationList(dto), nil
}

// filterQuery converts a [ports.ExamFilter] to URL query values. Returns nil
// if no filters are set.
func filterQuery(f ports.ExamFilter) url.Values {
	v := url.Values{}
	if f.Subject != "" {
		v.Set("subject", f.Subject)
	}
	if f.Status != "" {
		v.Set("status", f.Status.String())
	}
	if len(v) == 0 {
		return nil
	}
	return v
}
