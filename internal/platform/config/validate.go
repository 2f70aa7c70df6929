package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	errs := []error{
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Auth.validate(),
		c.Health.validate(),
		c.Telemetry.validate(),
	}

	if c.UsesREST() {
		errs = append(errs, c.Client.validate())
		if c.Store.APIKey == "" {
			errs = append(errs, errors.New("store.api_key must not be empty when a rest driver is selected"))
		}
	}

	switch c.Store.Driver {
	case StorePostgres:
		errs = append(errs, c.Postgres.validate())
	case StoreBadger:
		errs = append(errs, c.Badger.validate())
	}

	return errors.Join(errs...)
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

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if strings.HasSuffix(cl.BaseURL, "/") {
		errs = append(errs, fmt.Errorf("client.base_url must not end with a slash, got %q", cl.BaseURL))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("client.rate_limit.requests_per_second must not be negative"))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case StoreREST, StorePostgres, StoreBadger, StoreMemory:
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: rest, postgres, badger, memory; got %q", s.Driver))
	}
	if s.Table == "" {
		errs = append(errs, errors.New("store.table must not be empty"))
	}

	return errors.Join(errs...)
}

func (p *PostgresConfig) validate() error {
	var errs []error

	if p.DSN == "" {
		errs = append(errs, errors.New("postgres.dsn must not be empty when store.driver is postgres"))
	}
	if p.MaxConns < 1 {
		errs = append(errs, fmt.Errorf("postgres.max_conns must be >= 1, got %d", p.MaxConns))
	}
	if p.MinConns < 0 || p.MinConns > p.MaxConns {
		errs = append(errs, fmt.Errorf("postgres.min_conns must be between 0 and max_conns, got %d", p.MinConns))
	}

	return errors.Join(errs...)
}

func (b *BadgerConfig) validate() error {
	if !b.InMemory && b.Path == "" {
		return errors.New("badger.path must not be empty unless badger.in_memory is set")
	}
	return nil
}

func (a *AuthConfig) validate() error {
	var errs []error

	switch a.Driver {
	case AuthREST, AuthLocal:
		// Valid drivers.
	default:
		errs = append(errs, fmt.Errorf("auth.driver must be one of: rest, local; got %q", a.Driver))
	}

	// The secret verifies bearer tokens and, for the local driver, signs them.
	if len(a.JWTSecret) < minJWTSecretLength {
		errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters", minJWTSecretLength))
	}
	if a.TokenLifetime <= 0 {
		errs = append(errs, errors.New("auth.token_lifetime must be positive"))
	}
	if a.Leeway < 0 {
		errs = append(errs, errors.New("auth.leeway must not be negative"))
	}

	return errors.Join(errs...)
}

func (h *HealthConfig) validate() error {
	if h.CheckTimeout <= 0 {
		return errors.New("health.check_timeout must be positive")
	}
	return nil
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
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
