// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

// Compile-time check that PostService implements ports.PostService.
var _ ports.PostService = (*PostService)(nil)

// PostService implements ports.PostService on top of a PostStore. It
// validates input, logs failures with the operation name, and forwards
// everything else to the store unchanged. Nothing is cached between calls.
type PostService struct {
	store  ports.PostStore
	logger *slog.Logger
}

// NewPostService creates a PostService. A nil logger discards output.
func NewPostService(store ports.PostStore, logger *slog.Logger) *PostService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PostService{
		store:  store,
		logger: logger,
	}
}

// List returns every post in the store's order.
func (s *PostService) List(ctx context.Context) ([]post.Post, error) {
	s.logger.InfoContext(ctx, "listing posts")

	posts, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list posts",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return posts, nil
}

// Get returns a single post by ID.
func (s *PostService) Get(ctx context.Context, id string) (*post.Post, error) {
	s.logger.InfoContext(ctx, "fetching post", slog.String("id", id))

	p, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch post",
			slog.String("operation", "Get"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return p, nil
}

// Create validates and stores a new post, returning the stored row with its
// assigned ID.
func (s *PostService) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	s.logger.InfoContext(ctx, "creating post", slog.String("title", p.Title))

	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create post",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// Update validates and applies a partial update.
func (s *PostService) Update(ctx context.Context, id string, patch post.Patch) (*post.Post, error) {
	s.logger.InfoContext(ctx, "updating post", slog.String("id", id))

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update post",
			slog.String("operation", "Update"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// Delete removes a post by ID.
func (s *PostService) Delete(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting post", slog.String("id", id))

	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete post",
			slog.String("operation", "Delete"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// Search returns posts whose title or content contains term, ignoring case.
func (s *PostService) Search(ctx context.Context, term string) ([]post.Post, error) {
	q, err := post.NewKeywordQuery(term)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "searching posts", slog.String("q", q.Term))

	posts, err := s.store.Search(ctx, q)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to search posts",
			slog.String("operation", "Search"),
			slog.String("q", q.Term),
			slog.Any("error", err),
		)
		return nil, err
	}

	return posts, nil
}

// Purge deletes every post whose title starts with titlePrefix. Matching ids
// are collected first and removed with a single DeleteMany call.
func (s *PostService) Purge(ctx context.Context, titlePrefix string) (int, error) {
	q, err := post.NewTitlePrefixQuery(titlePrefix)
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "purging posts", slog.String("title_prefix", titlePrefix))

	matches, err := s.store.Search(ctx, q)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to find posts to purge",
			slog.String("operation", "Purge"),
			slog.Any("error", err),
		)
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(matches))
	for i := range matches {
		ids = append(ids, matches[i].ID)
	}

	deleted, err := s.store.DeleteMany(ctx, ids)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to purge posts",
			slog.String("operation", "Purge"),
			slog.Int("matched", len(ids)),
			slog.Any("error", err),
		)
		return 0, err
	}

	s.logger.InfoContext(ctx, "purged posts", slog.Int("deleted", deleted))
	return deleted, nil
}
