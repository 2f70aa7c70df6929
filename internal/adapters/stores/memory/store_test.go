package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/stores/memory"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
)

func strPtr(s string) *string { return &s }

func mustCreate(t *testing.T, s *memory.Store, title, content string) *post.Post {
	t.Helper()

	p, err := s.Create(context.Background(), &post.Post{Title: title, Content: content, Author: "Ada"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return p
}

func TestStore_CreateGet(t *testing.T) {
	t.Parallel()

	s := memory.New()
	created := mustCreate(t, s, "Hello", "World")

	if created.ID == "" {
		t.Fatal("Create() returned empty ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Create() returned zero CreatedAt")
	}

	got, err := s.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if *got != *created {
		t.Errorf("Get() = %+v, want %+v", got, created)
	}
}

func TestStore_CreateAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	s := memory.New()
	a := mustCreate(t, s, "Same", "Same")
	b := mustCreate(t, s, "Same", "Same")

	if a.ID == b.ID {
		t.Errorf("two creates share ID %q", a.ID)
	}
}

func TestStore_ListPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	s := memory.New()
	var want []string
	for i := range 5 {
		want = append(want, mustCreate(t, s, fmt.Sprintf("Post %d", i), "x").ID)
	}

	if err := s.Delete(context.Background(), want[2]); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	want = append(want[:2], want[3:]...)

	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len(List()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("List()[%d].ID = %q, want %q", i, got[i].ID, want[i])
		}
	}
}

func TestStore_List_EmptyIsNonNil(t *testing.T) {
	t.Parallel()

	got, err := memory.New().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", got)
	}
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	s := memory.New()
	created := mustCreate(t, s, "Before", "Body")

	updated, err := s.Update(context.Background(), created.ID, post.Patch{Title: strPtr("After")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "After" || updated.Content != "Body" {
		t.Errorf("Update() = %+v, want title replaced and content kept", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) || updated.ID != created.ID {
		t.Error("Update() changed ID or CreatedAt")
	}
}

func TestStore_MissingID(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := context.Background()

	if _, err := s.Get(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
	if _, err := s.Update(ctx, "nope", post.Patch{Title: strPtr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_DeleteTwice(t *testing.T) {
	t.Parallel()

	s := memory.New()
	created := mustCreate(t, s, "Once", "x")

	if err := s.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("first Delete() error = %v", err)
	}
	if err := s.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Search(t *testing.T) {
	t.Parallel()

	s := memory.New()
	mustCreate(t, s, "Learning Go", "channels")
	mustCreate(t, s, "Cooking", "a GOod recipe")
	mustCreate(t, s, "Gardening", "soil")

	q, err := post.NewKeywordQuery("go")
	if err != nil {
		t.Fatalf("NewKeywordQuery() error = %v", err)
	}

	got, err := s.Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(Search()) = %d, want 2 (title or content, any case)", len(got))
	}
	if got[0].Title != "Learning Go" || got[1].Title != "Cooking" {
		t.Errorf("Search() titles = %q, %q", got[0].Title, got[1].Title)
	}
}

func TestStore_DeleteMany(t *testing.T) {
	t.Parallel()

	s := memory.New()
	a := mustCreate(t, s, "Test Post 1", "x")
	b := mustCreate(t, s, "Test Post 2", "x")
	keep := mustCreate(t, s, "Keep me", "x")

	n, err := s.DeleteMany(context.Background(), []string{a.ID, b.ID, "unknown"})
	if err != nil {
		t.Fatalf("DeleteMany() error = %v", err)
	}
	if n != 2 {
		t.Errorf("DeleteMany() = %d, want 2", n)
	}

	rest, _ := s.List(context.Background())
	if len(rest) != 1 || rest[0].ID != keep.ID {
		t.Errorf("List() after DeleteMany = %+v, want only %q", rest, keep.ID)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			p, err := s.Create(ctx, &post.Post{Title: fmt.Sprintf("P%d", i), Content: "x", Author: "y"})
			if err != nil {
				t.Errorf("Create() error = %v", err)
				return
			}
			_, _ = s.List(ctx)
			_, _ = s.Get(ctx, p.ID)
		})
	}
	wg.Wait()

	all, _ := s.List(ctx)
	if len(all) != 50 {
		t.Errorf("len(List()) = %d, want 50", len(all))
	}
}
