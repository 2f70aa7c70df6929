package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 1
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultPostgresMaxConns = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
// Every overridable key must appear here so APP_ env vars resolve even when
// no YAML layer mentions the key.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "http://localhost:54321",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           0,

		"store.driver":  StoreREST,
		"store.table":   "posts",
		"store.api_key": "",

		"postgres.dsn":              "",
		"postgres.max_conns":        defaultPostgresMaxConns,
		"postgres.min_conns":        0,
		"postgres.migrate_on_start": true,

		"badger.path":      "data/badger",
		"badger.in_memory": false,

		"auth.driver":         AuthREST,
		"auth.enforce":        true,
		"auth.jwt_secret":     "",
		"auth.issuer":         "blog-posts-api",
		"auth.token_lifetime": "1h",
		"auth.leeway":         "30s",

		"health.check_timeout": "2s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "blog-posts-api",
	}
}
