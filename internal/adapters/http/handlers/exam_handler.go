package handlers

import (
	"fmt"
	"net/http"

	"github.com/examstack/exam-bff/internal/adapters/http/dto"
	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/ports"
)

// ExamHandler handles HTTP requests for exam listing and registration
// operations.
type ExamHandler struct {
	svc ports.ExamService
}

// NewExamHandler creates a new ExamHandler with the given service port.
func NewExamHandler(svc ports.ExamService) *ExamHandler {
	return &ExamHandler{svc: svc}
}

// parseExamFilter builds a ports.ExamFilter from the request query string.
// Returns a validation error for unknown status values.
func parseExamFilter(r *http.Request) (ports.ExamFilter, error) {
	filter := ports.ExamFilter{
		Subject: r.URL.Query().Get("subject"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ExamStatus(raw)
		if !status.IsValid() {
			return ports.ExamFilter{}, &domain.ValidationError{
				Fields: map[string]string{"status": fmt.Sprintf("invalid: %q", raw)},
			}
		}
		filter.Status = status
	}

	return filter, nil
}

// ListExams handles GET /api/v1/exams.
func (h *ExamHandler) ListExams(w http.ResponseWriter, r *http.Request) {
	filter, err := parseExamFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	exams, err := h.svc.ListExams(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExamListResponse(exams))
}

// GetExam handles GET /api/v1/exams/{id}.
func (h *ExamHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	exam, err := h.svc.GetExam(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToExamResponse(exam))
}

// Register handles POST /api/v1/exams/{examId}/registrations.
func (h *ExamHandler) Register(w http.ResponseWriter, r *http.Request) {
	examID, err := pathParam(r, "examId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reg, err := h.svc.Register(r.Context(), examID, req.UserID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToRegistrationResponse(reg))
}

// CancelRegistration handles DELETE /api/v1/exams/{examId}/registrations/{id}.
func (h *ExamHandler) CancelRegistration(w http.ResponseWriter, r *http.Request) {
	examID, err := pathParam(r, "examId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.CancelRegistration(r.Context(), examID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
