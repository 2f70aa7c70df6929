package badger_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/stores/badger"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/config"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/telemetry"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func openInMemory(t *testing.T, opts ...badger.Option) *badger.Store {
	t.Helper()

	opts = append([]badger.Option{badger.WithClock(func() time.Time { return fixedNow })}, opts...)
	s, err := badger.Open(&config.BadgerConfig{InMemory: true}, slog.New(slog.DiscardHandler), opts...)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustCreate(t *testing.T, s *badger.Store, title string) *post.Post {
	t.Helper()

	p, err := s.Create(context.Background(), &post.Post{Title: title, Content: "body of " + title, Author: "Ada"})
	if err != nil {
		t.Fatalf("Create(%q) error = %v", title, err)
	}
	return p
}

func TestStore_CreateGet(t *testing.T) {
	t.Parallel()

	s := openInMemory(t)
	created := mustCreate(t, s, "First")

	if created.ID != "1" {
		t.Errorf("first ID = %q, want %q", created.ID, "1")
	}
	if !created.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", created.CreatedAt, fixedNow)
	}

	got, err := s.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "First" || got.Author != "Ada" || !got.CreatedAt.Equal(fixedNow) {
		t.Errorf("Get() = %+v", got)
	}
}

func TestStore_ListOrderAcrossKeyWidths(t *testing.T) {
	t.Parallel()

	s := openInMemory(t)
	for i := 1; i <= 12; i++ {
		mustCreate(t, s, fmt.Sprintf("Post %d", i))
	}

	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("len(List()) = %d, want 12", len(got))
	}
	for i, p := range got {
		if want := fmt.Sprintf("%d", i+1); p.ID != want {
			t.Errorf("List()[%d].ID = %q, want %q", i, p.ID, want)
		}
	}
}

func TestStore_List_Empty(t *testing.T) {
	t.Parallel()

	got, err := openInMemory(t).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", got)
	}
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	s := openInMemory(t)
	created := mustCreate(t, s, "Before")

	updated, err := s.Update(context.Background(), created.ID, post.Patch{Content: strPtr("rewritten")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "Before" || updated.Content != "rewritten" {
		t.Errorf("Update() = %+v", updated)
	}

	got, _ := s.Get(context.Background(), created.ID)
	if got.Content != "rewritten" {
		t.Errorf("Get() after Update content = %q", got.Content)
	}
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()

	s := openInMemory(t)
	ctx := context.Background()

	for _, id := range []string{"42", "abc", "0", "-1", ""} {
		t.Run("id="+id, func(t *testing.T) {
			if _, err := s.Get(ctx, id); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("Get() error = %v, want ErrNotFound", err)
			}
			if _, err := s.Update(ctx, id, post.Patch{Title: strPtr("x")}); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("Update() error = %v, want ErrNotFound", err)
			}
			if err := s.Delete(ctx, id); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("Delete() error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStore_NonCanonicalIDIsNotFound(t *testing.T) {
	t.Parallel()

	s := openInMemory(t)
	ctx := context.Background()
	created := mustCreate(t, s, "Only")

	for _, id := range []string{"01", "+1", "001"} {
		t.Run("id="+id, func(t *testing.T) {
			if _, err := s.Get(ctx, id); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("Get(%q) error = %v, want ErrNotFound", id, err)
			}
			if err := s.Delete(ctx, id); !errors.Is(err, domain.ErrNotFound) {
				t.Errorf("Delete(%q) error = %v, want ErrNotFound", id, err)
			}
		})
	}

	if _, err := s.Get(ctx, created.ID); err != nil {
		t.Errorf("Get(%q) error = %v, want the post untouched", created.ID, err)
	}
}

func TestStore_DeleteThenGet(t *testing.T) {
	t.Parallel()

	s := openInMemory(t)
	created := mustCreate(t, s, "Doomed")

	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_SearchAndDeleteMany(t *testing.T) {
	t.Parallel()

	s := openInMemory(t)
	a := mustCreate(t, s, "Test Post A")
	mustCreate(t, s, "Unrelated")
	b := mustCreate(t, s, "test post b")

	q, err := post.NewTitlePrefixQuery("Test Post ")
	if err != nil {
		t.Fatalf("NewTitlePrefixQuery() error = %v", err)
	}

	found, err := s.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(found) != 2 || found[0].ID != a.ID || found[1].ID != b.ID {
		t.Fatalf("Search() = %+v, want posts %s and %s", found, a.ID, b.ID)
	}

	n, err := s.DeleteMany(context.Background(), []string{a.ID, b.ID, "999", "junk"})
	if err != nil {
		t.Fatalf("DeleteMany() error = %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteMany() = %d, want 2", n)
	}

	rest, _ := s.List(context.Background())
	if len(rest) != 1 || rest[0].Title != "Unrelated" {
		t.Errorf("List() after DeleteMany = %+v", rest)
	}
}

func TestStore_DeleteMany_NoIDs(t *testing.T) {
	t.Parallel()

	n, err := openInMemory(t).DeleteMany(context.Background(), nil)
	if err != nil || n != 0 {
		t.Errorf("DeleteMany(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	s, err := badger.Open(&config.BadgerConfig{InMemory: true}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if s.Name() != "badger" {
		t.Errorf("Name() = %q, want %q", s.Name(), "badger")
	}
	if err := s.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() on open DB = %v, want nil", err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() on closed DB = nil, want error")
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	cfg := &config.BadgerConfig{Path: t.TempDir()}
	logger := slog.New(slog.DiscardHandler)

	s, err := badger.Open(cfg, logger)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	first, err := s.Create(context.Background(), &post.Post{Title: "Durable", Content: "x", Author: "y"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	s, err = badger.Open(cfg, logger)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Get(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got.Title != "Durable" {
		t.Errorf("Title = %q, want %q", got.Title, "Durable")
	}

	second, err := s.Create(context.Background(), &post.Post{Title: "Next", Content: "x", Author: "y"})
	if err != nil {
		t.Fatalf("Create() after reopen error = %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("reopened store reused ID %q", first.ID)
	}
}

func TestStore_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := metric.NewManualReader()
	m, err := telemetry.NewMetrics(metric.NewMeterProvider(metric.WithReader(reader)))
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	s := openInMemory(t, badger.WithMetrics(m))
	mustCreate(t, s, "Counted")
	_, _ = s.Get(context.Background(), "404")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	if total < 2 {
		t.Errorf("recorded %d store operations, want at least 2", total)
	}
}
