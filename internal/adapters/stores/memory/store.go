// Package memory provides a process-local [ports.PostStore] for the local
// profile and tests. Rows live only as long as the process.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PostStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store keeps posts in insertion order behind a read/write mutex.
type Store struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]post.Post
	now   func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		rows: make(map[string]post.Post),
		now:  time.Now,
	}
}

// List returns every post in insertion order.
func (s *Store) List(_ context.Context) ([]post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]post.Post, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rows[id])
	}
	return out, nil
}

// Get returns the post with the given id.
func (s *Store) Get(_ context.Context, id string) (*post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.rows[id]
	if !ok {
		return nil, notFound(id)
	}
	return &p, nil
}

// Create stores a copy of p under a fresh UUID.
func (s *Store) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	row := post.Post{
		ID:        uuid.NewString(),
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[row.ID] = row
	s.order = append(s.order, row.ID)
	return &row, nil
}

// Update applies patch to the post with the given id.
func (s *Store) Update(_ context.Context, id string, patch post.Patch) (*post.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, notFound(id)
	}
	patch.Apply(&row)
	s.rows[id] = row
	return &row, nil
}

// Delete removes the post with the given id.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return notFound(id)
	}
	s.remove(id)
	return nil
}

// Search returns the posts matching q in insertion order.
func (s *Store) Search(_ context.Context, q post.Query) ([]post.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]post.Post, 0)
	for _, id := range s.order {
		row := s.rows[id]
		if q.Matches(&row) {
			out = append(out, row)
		}
	}
	return out, nil
}

// DeleteMany removes every listed post that exists.
func (s *Store) DeleteMany(_ context.Context, ids []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for _, id := range ids {
		if _, ok := s.rows[id]; ok {
			s.remove(id)
			deleted++
		}
	}
	return deleted, nil
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string { return "memory" }

// HealthCheck implements [ports.HealthChecker]. The store is always available.
func (s *Store) HealthCheck(_ context.Context) error { return nil }

// remove deletes id from both indexes. Callers hold the write lock.
func (s *Store) remove(id string) {
	delete(s.rows, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

func notFound(id string) error {
	return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
}
