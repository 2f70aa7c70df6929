// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers.
const (
	StoreREST     = "rest"
	StorePostgres = "postgres"
	StoreBadger   = "badger"
	StoreMemory   = "memory"
)

// Identity drivers.
const (
	AuthREST  = "rest"
	AuthLocal = "local"
)

// minJWTSecretLength is the shortest HMAC secret accepted for HS256.
const minJWTSecretLength = 32

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Store     StoreConfig     `koanf:"store"`
	Postgres  PostgresConfig  `koanf:"postgres"`
	Badger    BadgerConfig    `koanf:"badger"`
	Auth      AuthConfig      `koanf:"auth"`
	Health    HealthConfig    `koanf:"health"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// UsesREST reports whether any component talks to the database service over HTTP.
func (c *Config) UsesREST() bool {
	return c.Store.Driver == StoreREST || c.Auth.Driver == AuthREST
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the HTTP client that reaches the database
// service. BaseURL is the project root (e.g. "https://xyz.supabase.co").
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// StoreConfig selects and configures the post store.
type StoreConfig struct {
	Driver string `koanf:"driver"`
	Table  string `koanf:"table"`
	APIKey string `koanf:"api_key"`
}

// PostgresConfig holds settings for the direct PostgreSQL store.
type PostgresConfig struct {
	DSN            string `koanf:"dsn"`
	MaxConns       int    `koanf:"max_conns"`
	MinConns       int    `koanf:"min_conns"`
	MigrateOnStart bool   `koanf:"migrate_on_start"`
}

// BadgerConfig holds settings for the embedded Badger store.
type BadgerConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// AuthConfig holds identity and bearer token settings.
type AuthConfig struct {
	Driver        string        `koanf:"driver"`
	Enforce       bool          `koanf:"enforce"`
	JWTSecret     string        `koanf:"jwt_secret"`
	Issuer        string        `koanf:"issuer"`
	TokenLifetime time.Duration `koanf:"token_lifetime"`
	Leeway        time.Duration `koanf:"leeway"`
}

// HealthConfig holds readiness check settings.
type HealthConfig struct {
	CheckTimeout time.Duration `koanf:"check_timeout"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
