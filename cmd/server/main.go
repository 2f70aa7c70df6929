// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/blog-posts-api/internal/adapters/http"
	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/identity/local"
	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/stores/badger"
	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/stores/memory"
	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/stores/postgres"
	"github.com/jsamuelsen11/blog-posts-api/internal/app"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/config"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/health"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/logging"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/token"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	storeOpenTimeout      = 30 * time.Second

	// upstreamName labels the database service in logs, metrics and health.
	upstreamName = "supabase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	store, err := openStore(ctx, injector, cfg, logger, otel.metrics)
	if err != nil {
		_ = otel.Shutdown(ctx)
		return fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}
	do.ProvideValue[ports.PostStore](injector, store)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		closeStore()
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)
	if cfg.Auth.Driver == config.AuthREST {
		client := do.MustInvoke[*httpclient.Client](injector)
		registry.Register(health.NewCheckerFunc(upstreamName+"-auth", client.HealthCheck))
	}

	logger.Info("service configured",
		slog.String("profile", profile),
		slog.String("store", cfg.Store.Driver),
		slog.String("auth", cfg.Auth.Driver),
		slog.Bool("auth_enforced", cfg.Auth.Enforce),
	)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		closeStore()
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	closeStore()

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

// managedStore is a post store together with its health check and the
// release of whatever it holds open.
type managedStore interface {
	ports.PostStore
	ports.HealthChecker
	Close() error
}

// memStore adapts the in-memory store, which holds nothing open.
type memStore struct {
	*memory.Store
}

func (memStore) Close() error { return nil }

// pgStore adapts the pool-backed store, whose Close cannot fail.
type pgStore struct {
	*postgres.Store
}

func (s pgStore) Close() error {
	s.Store.Close()
	return nil
}

// restStore leaves the shared HTTP client open; it holds no resources.
type restStore struct {
	*acl.PostClient
}

func (restStore) Close() error { return nil }

func openStore(
	ctx context.Context,
	injector do.Injector,
	cfg *config.Config,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) (managedStore, error) {
	logger = logger.With(slog.String("store", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.StoreREST:
		client := do.MustInvoke[*httpclient.Client](injector)
		return restStore{acl.NewPostClient(client, cfg.Store.Table, cfg.Store.APIKey, logger)}, nil

	case config.StorePostgres:
		openCtx, cancel := context.WithTimeout(ctx, storeOpenTimeout)
		defer cancel()
		s, err := postgres.Open(openCtx, &cfg.Postgres, logger, postgres.WithMetrics(metrics))
		if err != nil {
			return nil, err
		}
		return pgStore{s}, nil

	case config.StoreBadger:
		s, err := badger.Open(&cfg.Badger, logger, badger.WithMetrics(metrics))
		if err != nil {
			return nil, err
		}
		return s, nil

	case config.StoreMemory:
		return memStore{memory.New()}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, upstreamName, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenVerifier, error) {
		return token.NewVerifier(&cfg.Auth)
	})

	do.Provide(injector, func(i do.Injector) (ports.IdentityProvider, error) {
		switch cfg.Auth.Driver {
		case config.AuthREST:
			client := do.MustInvoke[*httpclient.Client](i)
			return acl.NewAuthClient(client, cfg.Store.APIKey, logger), nil
		case config.AuthLocal:
			issuer, err := token.NewIssuer(&cfg.Auth)
			if err != nil {
				return nil, fmt.Errorf("creating token issuer: %w", err)
			}
			return local.New(issuer)
		default:
			return nil, fmt.Errorf("unknown auth driver %q", cfg.Auth.Driver)
		}
	})

	do.Provide(injector, func(i do.Injector) (ports.PostService, error) {
		store := do.MustInvoke[ports.PostStore](i)
		return app.NewPostService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		idp := do.MustInvoke[ports.IdentityProvider](i)
		return app.NewAuthService(idp, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Health.CheckTimeout)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PostHandler, error) {
		svc := do.MustInvoke[ports.PostService](i)
		return handlers.NewPostHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AuthHandler, error) {
		svc := do.MustInvoke[ports.AuthService](i)
		return handlers.NewAuthHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		postH := do.MustInvoke[*handlers.PostHandler](i)
		authH := do.MustInvoke[*handlers.AuthHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		verifier := do.MustInvoke[ports.TokenVerifier](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(postH, authH, healthH,
			middleware.Authenticate(verifier, cfg.Auth.Enforce),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
