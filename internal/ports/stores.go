package ports

import (
	"context"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
)

// PostStore defines the outbound port for post persistence. Implementations
// own id assignment, timestamps, and durability; callers never cache rows.
type PostStore interface {
	// List returns every post in the store's default order.
	List(ctx context.Context) ([]post.Post, error)

	// Get returns a single post by ID.
	// Returns domain.ErrNotFound if no post has that ID.
	Get(ctx context.Context, id string) (*post.Post, error)

	// Create inserts a post and returns the stored row with its assigned ID.
	Create(ctx context.Context, p *post.Post) (*post.Post, error)

	// Update applies a partial replacement and returns the updated row.
	// Returns domain.ErrNotFound if no post has that ID.
	Update(ctx context.Context, id string, patch post.Patch) (*post.Post, error)

	// Delete removes a post by ID.
	// Returns domain.ErrNotFound if no post has that ID.
	Delete(ctx context.Context, id string) error

	// Search returns the posts matching the query.
	Search(ctx context.Context, q post.Query) ([]post.Post, error)

	// DeleteMany removes every post whose ID is in ids and returns how many
	// rows were deleted. Unknown IDs are ignored.
	DeleteMany(ctx context.Context, ids []string) (int, error)
}

// IdentityProvider defines the outbound port for account management and
// credential exchange.
type IdentityProvider interface {
	// SignUp registers a new account.
	// Returns domain.ErrConflict if the email is already registered.
	SignUp(ctx context.Context, reg *identity.Registration) (*identity.User, error)

	// SignIn exchanges credentials for a session carrying an access token.
	// Returns domain.ErrUnauthorized if the credentials are rejected.
	SignIn(ctx context.Context, creds *identity.Credentials) (*identity.Session, error)
}

// TokenVerifier validates bearer access tokens.
type TokenVerifier interface {
	// Verify checks the token signature and claims and returns the caller.
	// Every failure wraps domain.ErrUnauthorized.
	Verify(ctx context.Context, raw string) (*identity.Principal, error)
}
