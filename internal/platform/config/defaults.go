package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3

	defaultBreakerFailureThreshold = 5
)

// defaults returns the default configuration values.
// These can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"upstreams.user.base_url":                           "http://localhost:8081",
		"upstreams.user.timeout":                            "2s",
		"upstreams.user.retry.max_attempts":                 defaultRetryMaxAttempts,
		"upstreams.user.retry.initial_delay":                "100ms",
		"upstreams.user.retry.max_delay":                    "2s",
		"upstreams.user.circuit_breaker.failure_threshold":  defaultBreakerFailureThreshold,
		"upstreams.user.circuit_breaker.open_duration":      "30s",
		"upstreams.user.circuit_breaker.minimum_throughput": 0,

		"upstreams.exam.base_url":                           "http://localhost:8082",
		"upstreams.exam.timeout":                            "3s",
		"upstreams.exam.retry.max_attempts":                 defaultRetryMaxAttempts,
		"upstreams.exam.retry.initial_delay":                "100ms",
		"upstreams.exam.retry.max_delay":                    "2s",
		"upstreams.exam.circuit_breaker.failure_threshold":  defaultBreakerFailureThreshold,
		"upstreams.exam.circuit_breaker.open_duration":      "30s",
		"upstreams.exam.circuit_breaker.minimum_throughput": 0,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",
	}
}
