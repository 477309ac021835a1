package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/examstack/exam-bff/internal/domain"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validUser() domain.User {
	return domain.User{
		ID:        "u-1",
		Email:     "kim@example.com",
		FullName:  "Kim Larsen",
		Role:      domain.RoleStudent,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validExam() domain.Exam {
	return domain.Exam{
		ID:          "e-1",
		Title:       "Algorithms Final",
		Subject:     "algorithms",
		ScheduledAt: testTime,
		Duration:    2 * time.Hour,
		Capacity:    30,
		Registered:  12,
		Status:      domain.ExamOpen,
	}
}

func validRegistration() domain.Registration {
	return domain.Registration{
		ID:           "r-1",
		ExamID:       "e-1",
		UserID:       "u-1",
		Status:       domain.RegistrationConfirmed,
		RegisteredAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
