package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/examstack/exam-bff/internal/adapters/http/dto"
	"github.com/examstack/exam-bff/internal/adapters/http/handlers"
	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/ports"
	"github.com/examstack/exam-bff/mocks"
)

func newExamHandler(t *testing.T) (*handlers.ExamHandler, *mocks.MockExamService) {
	t.Helper()
	svc := mocks.NewMockExamService(t)
	return handlers.NewExamHandler(svc), svc
}

// --- ListExams ---

func TestListExams_Success(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	exams := []domain.Exam{validExam()}
	svc.EXPECT().ListExams(mock.Anything, ports.ExamFilter{}).Return(exams, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exams", nil)
	h.ListExams(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ExamListResponse](t, rec)
	if resp.Count != 1 {
		t.Errorf("Count = %d, want 1", resp.Count)
	}
}

func TestListExams_WithFilters(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	exams := []domain.Exam{validExam()}
	svc.EXPECT().ListExams(mock.Anything, ports.ExamFilter{
		Subject: "algorithms",
		Status:  domain.ExamOpen,
	}).Return(exams, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exams?subject=algorithms&status=open", nil)
	h.ListExams(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestListExams_InvalidStatusFilter(t *testing.T) {
	t.Parallel()
	h, _ := newExamHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exams?status=bad", nil)
	h.ListExams(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListExams_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	svc.EXPECT().ListExams(mock.Anything, ports.ExamFilter{}).Return(nil, domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exams", nil)
	h.ListExams(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- GetExam ---

func TestGetExam_Success(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	exam := validExam()
	svc.EXPECT().GetExam(mock.Anything, "e-1").Return(&exam, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exams/e-1", nil)
	h.GetExam(rec, withChiParams(req, map[string]string{"id": "e-1"}))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ExamResponse](t, rec)
	if resp.Title != "Algorithms Final" {
		t.Errorf("Title = %q, want Algorithms Final", resp.Title)
	}
	if resp.DurationMinutes != 120 {
		t.Errorf("DurationMinutes = %d, want 120", resp.DurationMinutes)
	}
}

func TestGetExam_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	svc.EXPECT().GetExam(mock.Anything, "e-404").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exams/e-404", nil)
	h.GetExam(rec, withChiParams(req, map[string]string{"id": "e-404"}))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	reg := validRegistration()
	svc.EXPECT().Register(mock.Anything, "e-1", "u-1").Return(&reg, nil)

	body := jsonBody(t, dto.RegisterRequest{UserID: "u-1"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exams/e-1/registrations", body)
	req.Header.Set("Content-Type", "application/json")
	h.Register(rec, withChiParams(req, map[string]string{"examId": "e-1"}))

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.RegistrationResponse](t, rec)
	if resp.Status != "confirmed" {
		t.Errorf("Status = %q, want confirmed", resp.Status)
	}
}

func TestRegister_MissingUserID(t *testing.T) {
	t.Parallel()
	h, _ := newExamHandler(t)

	body := jsonBody(t, dto.RegisterRequest{UserID: ""})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exams/e-1/registrations", body)
	req.Header.Set("Content-Type", "application/json")
	h.Register(rec, withChiParams(req, map[string]string{"examId": "e-1"}))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRegister_InvalidJSON(t *testing.T) {
	t.Parallel()
	h, _ := newExamHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exams/e-1/registrations", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	h.Register(rec, withChiParams(req, map[string]string{"examId": "e-1"}))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestRegister_ExamFull(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	svc.EXPECT().Register(mock.Anything, "e-1", "u-1").Return(nil, domain.ErrConflict)

	body := jsonBody(t, dto.RegisterRequest{UserID: "u-1"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exams/e-1/registrations", body)
	req.Header.Set("Content-Type", "application/json")
	h.Register(rec, withChiParams(req, map[string]string{"examId": "e-1"}))

	requireStatus(t, rec, http.StatusConflict)
}

func TestRegister_UserNotFound(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	svc.EXPECT().Register(mock.Anything, "e-1", "u-404").Return(nil, domain.ErrNotFound)

	body := jsonBody(t, dto.RegisterRequest{UserID: "u-404"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/exams/e-1/registrations", body)
	req.Header.Set("Content-Type", "application/json")
	h.Register(rec, withChiParams(req, map[string]string{"examId": "e-1"}))

	requireStatus(t, rec, http.StatusNotFound)
}

// --- CancelRegistration ---

func TestCancelRegistration_Success(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	svc.EXPECT().CancelRegistration(mock.Anything, "e-1", "r-1").Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/exams/e-1/registrations/r-1", nil)
	h.CancelRegistration(rec, withChiParams(req, map[string]string{"examId": "e-1", "id": "r-1"}))

	requireStatus(t, rec, http.StatusNoContent)
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestCancelRegistration_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newExamHandler(t)

	svc.EXPECT().CancelRegistration(mock.Anything, "e-1", "r-404").Return(domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/exams/e-1/registrations/r-404", nil)
	h.CancelRegistration(rec, withChiParams(req, map[string]string{"examId": "e-1", "id": "r-404"}))

	requireStatus(t, rec, http.StatusNotFound)
}
