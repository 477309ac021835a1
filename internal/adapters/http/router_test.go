package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/examstack/exam-bff/internal/adapters/http"
	"github.com/examstack/exam-bff/internal/adapters/http/handlers"
	"github.com/examstack/exam-bff/internal/domain"
	"github.com/examstack/exam-bff/internal/ports"
	"github.com/examstack/exam-bff/mocks"
)

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockExamService) {
	t.Helper()
	userSvc := mocks.NewMockUserService(t)
	examSvc := mocks.NewMockExamService(t)
	dashSvc := mocks.NewMockDashboardService(t)
	registry := mocks.NewMockHealthRegistry(t)

	uh := handlers.NewUserHandler(userSvc)
	eh := handlers.NewExamHandler(examSvc)
	dh := handlers.NewDashboardHandler(dashSvc)
	hh := handlers.NewHealthHandler(registry)

	router := adapthttp.NewRouter(uh, eh, dh, hh)
	return router, examSvc
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodPost, "/api/v1/users"},
		{http.MethodGet, "/api/v1/users/{id}"},
		{http.MethodPatch, "/api/v1/users/{id}"},
		{http.MethodGet, "/api/v1/users/{id}/dashboard"},
		{http.MethodGet, "/api/v1/exams"},
		{http.MethodGet, "/api/v1/exams/{id}"},
		{http.MethodPost, "/api/v1/exams/{examId}/registrations"},
		{http.MethodDelete, "/api/v1/exams/{examId}/registrations/{id}"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	userSvc := mocks.NewMockUserService(t)
	examSvc := mocks.NewMockExamService(t)
	dashSvc := mocks.NewMockDashboardService(t)
	registry := mocks.NewMockHealthRegistry(t)

	uh := handlers.NewUserHandler(userSvc)
	eh := handlers.NewExamHandler(examSvc)
	dh := handlers.NewDashboardHandler(dashSvc)
	hh := handlers.NewHealthHandler(registry)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(uh, eh, dh, hh, testMW)

	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListExams(t *testing.T) {
	t.Parallel()

	router, examSvc := newTestRouter(t)

	examSvc.EXPECT().ListExams(mock.Anything, ports.ExamFilter{}).Return([]domain.Exam{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exams", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/exams", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
