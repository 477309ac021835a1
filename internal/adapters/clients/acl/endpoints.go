package acl

import (
	"github.com/examstack/exam-bff/internal/platform/config"
	"github.com/examstack/exam-bff/internal/upstream"
)

// Target service names. These key the per-service circuit breakers, so one
// name per downstream process, never per endpoint.
const (
	UserService = "user-service"
	ExamService = "exam-service"
)

// Endpoints returns the catalog of every downstream operation the BFF calls.
// Names are referenced by the clients in this package; path templates use
// ":param" tokens filled at call time.
func Endpoints() []upstream.Endpoint {
	return []upstream.Endpoint{
		{Name: "getUser", Service: UserService, PathTemplate: "/api/v1/users/:id"},
		{Name: "createUser", Service: UserService, PathTemplate: "/api/v1/users"},
		{Name: "updateUser", Service: UserService, PathTemplate: "/api/v1/users/:id"},

		{Name: "listExams", Service: ExamService, PathTemplate: "/api/v1/exams"},
		{Name: "getExam", Service: ExamService, PathTemplate: "/api/v1/exams/:id"},
		{Name: "registerForExam", Service: ExamService, PathTemplate: "/api/v1/exams/:examId/registrations"},
		{Name: "cancelRegistration", Service: ExamService, PathTemplate: "/api/v1/exams/:examId/registrations/:id"},
		{Name: "listUserRegistrations", Service: ExamService, PathTemplate: "/api/v1/users/:userId/registrations"},
	}
}

// Services converts the loaded upstream configuration into per-service
// defaults for the endpoint registry.
func Services(cfg config.UpstreamsConfig) map[string]upstream.ServiceDefaults {
	return map[string]upstream.ServiceDefaults{
		UserService: serviceDefaults(cfg.User),
		ExamService: serviceDefaults(cfg.Exam),
	}
}

func serviceDefaults(cfg config.UpstreamConfig) upstream.ServiceDefaults {
	return upstream.ServiceDefaults{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Retry: upstream.RetryPolicy{
			MaxAttempts:  cfg.Retry.MaxAttempts,
			InitialDelay: cfg.Retry.InitialDelay,
			MaxDelay:     cfg.Retry.MaxDelay,
		},
		Breaker: upstream.BreakerPolicy{
			FailureThreshold:  cfg.CircuitBreaker.FailureThreshold,
			OpenDuration:      cfg.CircuitBreaker.OpenDuration,
			MinimumThroughput: cfg.CircuitBreaker.MinimumThroughput,
		},
		RateLimit: upstream.RateLimit{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		},
	}
}
