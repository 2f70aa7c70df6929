package http_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/blog-posts-api/internal/adapters/http"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// syncBuffer is a bytes.Buffer safe for the server's goroutines to log into.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// serve starts s on an ephemeral port and returns its base URL. The server
// is shut down when the test ends.
func serve(t *testing.T, s *adapthttp.Server) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ln) }()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown() error: %v", err)
		}
		if err := <-errCh; err != nil {
			t.Errorf("Serve() error after shutdown: %v", err)
		}
	})

	return "http://" + ln.Addr().String()
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0}
	if s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil); s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want string
	}{
		{host: "127.0.0.1", want: "127.0.0.1:9090"},
		{host: "", want: ":9090"},
		{host: "::1", want: "[::1]:9090"},
	}

	for _, tt := range tests {
		s := adapthttp.NewServer(config.ServerConfig{Host: tt.host, Port: 9090}, http.NotFoundHandler(), discardLogger())
		if got := s.Addr(); got != tt.want {
			t.Errorf("Addr() with host %q = %q, want %q", tt.host, got, tt.want)
		}
	}
}

func TestServer_ServesBanner(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "API is running")
	})
	cfg := config.ServerConfig{
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	base := serve(t, adapthttp.NewServer(cfg, handler, discardLogger()))

	resp, err := http.Get(base + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "API is running" {
		t.Errorf("GET / = %d %q, want 200 %q", resp.StatusCode, body, "API is running")
	}
}

func TestServer_LogsBoundAddress(t *testing.T) {
	t.Parallel()

	var logs syncBuffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	base := serve(t, adapthttp.NewServer(config.ServerConfig{}, http.NotFoundHandler(), logger))

	// Serve logs before accepting, and the GET below is accepted only after that.
	resp, err := http.Get(base + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	_ = resp.Body.Close()

	addr := strings.TrimPrefix(base, "http://")
	if !strings.Contains(logs.String(), "addr="+addr) {
		t.Errorf("log output missing bound address %s, got: %s", addr, logs.String())
	}
}

func TestServer_RoutesNetHTTPErrorsToLogger(t *testing.T) {
	t.Parallel()

	var logs syncBuffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	// No Recovery in front, so net/http itself reports the panic.
	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("unrecovered")
	})
	base := serve(t, adapthttp.NewServer(config.ServerConfig{}, handler, logger))

	if resp, err := http.Get(base + "/posts"); err == nil {
		_ = resp.Body.Close()
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		out := logs.String()
		if strings.Contains(out, "unrecovered") {
			if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "component=http.server") {
				t.Errorf("net/http error not logged at warn with component, got: %s", out)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Errorf("net/http panic report not routed to logger, got: %s", logs.String())
}

func TestServer_StartAndShutdown(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0}
	s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	time.Sleep(50 * time.Millisecond)

	// A context without a deadline gets the default shutdown timeout.
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer func() { _ = ln.Close() }()

	port := ln.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), discardLogger())

	if err := s.Start(); err == nil {
		t.Fatal("Start() on a busy port = nil, want error")
	}
}
