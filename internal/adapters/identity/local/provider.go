// Package local implements [ports.IdentityProvider] in process: accounts are
// held in memory with bcrypt password hashes, and sessions carry HS256
// tokens from [token.Issuer] that the bearer middleware verifies with the
// same secret.
package local

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/logging"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/token"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

// Compile-time interface check.
var _ ports.IdentityProvider = (*Provider)(nil)

type account struct {
	user identity.User
	hash []byte
}

// Provider is an in-memory identity provider.
type Provider struct {
	mu       sync.RWMutex
	accounts map[string]account
	issuer   *token.Issuer
	cost     int
	now      func() time.Time

	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash []byte
}

// Option configures a Provider.
type Option func(*Provider)

// WithBcryptCost overrides bcrypt.DefaultCost. Values below bcrypt.MinCost
// are raised to it.
func WithBcryptCost(cost int) Option {
	return func(p *Provider) { p.cost = max(cost, bcrypt.MinCost) }
}

// WithClock overrides the clock used for account creation times.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// New creates an empty Provider that signs sessions with issuer.
func New(issuer *token.Issuer, opts ...Option) (*Provider, error) {
	p := &Provider{
		accounts: make(map[string]account),
		issuer:   issuer,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), p.cost)
	if err != nil {
		return nil, fmt.Errorf("generating placeholder hash: %w", err)
	}
	p.dummyHash = dummy
	return p, nil
}

// SignUp registers a new account keyed by normalized email.
// Returns domain.ErrConflict if the email is taken.
func (p *Provider) SignUp(ctx context.Context, reg *identity.Registration) (*identity.User, error) {
	email := identity.NormalizeEmail(reg.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := identity.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      reg.Name,
		IsTeacher: reg.IsTeacher,
		CreatedAt: p.now().UTC(),
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, taken := p.accounts[email]; taken {
		return nil, fmt.Errorf("user already registered: %w", domain.ErrConflict)
	}
	p.accounts[email] = account{user: user, hash: hash}

	logging.FromContext(ctx).DebugContext(ctx, "local account created", slog.String("user_id", user.ID))
	return &user, nil
}

// SignIn checks the password and issues a session.
// Returns domain.ErrUnauthorized for an unknown email or a wrong password.
func (p *Provider) SignIn(_ context.Context, creds *identity.Credentials) (*identity.Session, error) {
	p.mu.RLock()
	acct, ok := p.accounts[identity.NormalizeEmail(creds.Email)]
	p.mu.RUnlock()

	hash := p.dummyHash
	if ok {
		hash = acct.hash
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)); err != nil || !ok {
		return nil, fmt.Errorf("invalid login credentials: %w", domain.ErrUnauthorized)
	}

	session, err := p.issuer.Issue(&acct.user)
	if err != nil {
		return nil, err
	}
	return session, nil
}
