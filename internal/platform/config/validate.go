package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Upstreams.User.validate("upstreams.user"),
		c.Upstreams.Exam.validate("upstreams.exam"),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (u *UpstreamConfig) validate(prefix string) error {
	var errs []error

	if u.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if u.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if u.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, u.Retry.MaxAttempts))
	}
	if u.Retry.InitialDelay <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.initial_delay must be positive", prefix))
	}
	if u.Retry.MaxDelay < u.Retry.InitialDelay {
		errs = append(errs, fmt.Errorf("%s.retry.max_delay must be >= initial_delay", prefix))
	}
	if u.CircuitBreaker.FailureThreshold < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.failure_threshold must be >= 1, got %d",
			prefix, u.CircuitBreaker.FailureThreshold))
	}
	if u.CircuitBreaker.OpenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.open_duration must be positive", prefix))
	}
	if u.CircuitBreaker.MinimumThroughput < 0 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.minimum_throughput must be >= 0, got %d",
			prefix, u.CircuitBreaker.MinimumThroughput))
	}
	if u.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must be >= 0", prefix))
	}
	if u.RateLimit.RequestsPerSecond > 0 && u.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst must be >= 1 when rate limiting is enabled", prefix))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
