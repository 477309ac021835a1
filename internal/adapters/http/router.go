// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examstack/exam-bff/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	userHandler *handlers.UserHandler,
	examHandler *handlers.ExamHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// User accounts.
		r.Post("/users", userHandler.CreateUser)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Patch("/users/{id}", userHandler.UpdateUser)

		// Aggregated dashboard.
		r.Get("/users/{id}/dashboard", dashboardHandler.GetDashboard)

		// Exam catalog and registrations.
		r.Get("/exams", examHandler.ListExams)
		r.Get("/exams/{id}", examHandler.GetExam)
		r.Post("/exams/{examId}/registrations", examHandler.Register)
		r.Delete("/exams/{examId}/registrations/{id}", examHandler.CancelRegistration)
	})

	return r
}
