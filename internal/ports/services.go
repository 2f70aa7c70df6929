package ports

import (
	"context"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
)

// PostService defines the service port for post use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
type PostService interface {
	// List returns all posts.
	List(ctx context.Context) ([]post.Post, error)

	// Get returns a single post.
	// Returns domain.ErrNotFound if the post does not exist.
	Get(ctx context.Context, id string) (*post.Post, error)

	// Create validates and stores a new post.
	// Returns domain.ErrValidation if the post fails validation.
	Create(ctx context.Context, p *post.Post) (*post.Post, error)

	// Update validates and applies a partial update.
	// Returns domain.ErrValidation for an invalid patch and
	// domain.ErrNotFound if the post does not exist.
	Update(ctx context.Context, id string, patch post.Patch) (*post.Post, error)

	// Delete removes a post.
	// Returns domain.ErrNotFound if the post does not exist.
	Delete(ctx context.Context, id string) error

	// Search returns posts whose title or content contains term,
	// ignoring case. Returns domain.ErrValidation for a blank term.
	Search(ctx context.Context, term string) ([]post.Post, error)

	// Purge deletes every post whose title starts with titlePrefix and
	// returns the number deleted.
	Purge(ctx context.Context, titlePrefix string) (int, error)
}

// AuthService defines the service port for signup and login.
type AuthService interface {
	// SignUp validates and registers a new account.
	SignUp(ctx context.Context, reg *identity.Registration) (*identity.User, error)

	// Login validates the credentials and returns a session.
	Login(ctx context.Context, creds *identity.Credentials) (*identity.Session, error)
}
