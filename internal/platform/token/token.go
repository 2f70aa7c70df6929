// Package token signs and verifies the HS256 access tokens exchanged with the
// identity provider. Claims follow the GoTrue layout (sub, email, role,
// user_metadata, aud "authenticated") so a token minted by the hosted
// identity service and one minted by the local provider verify the same way.
//
// Verification:
//
//	v, err := token.NewVerifier(&cfg.Auth)
//	principal, err := v.Verify(ctx, raw)
//
// Issuance (local identity driver only):
//
//	iss, err := token.NewIssuer(&cfg.Auth)
//	session, err := iss.Issue(user)
package token

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/config"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/logging"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

// Audience and role stamped on tokens for signed-in users.
const (
	Audience          = "authenticated"
	RoleAuthenticated = "authenticated"
	TypeBearer        = "bearer"
)

var errEmptySecret = errors.New("token: jwt secret must not be empty")

// Compile-time interface check.
var _ ports.TokenVerifier = (*Verifier)(nil)

// Claims is the access token payload.
type Claims struct {
	Email        string         `json:"email,omitempty"`
	Role         string         `json:"role,omitempty"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
	jwt.RegisteredClaims
}

// Option configures a Verifier or Issuer.
type Option func(*clock)

type clock struct {
	now func() time.Time
}

// WithClock overrides the time source. Tests use it to pin expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *clock) {
		c.now = now
	}
}

func newClock(opts []Option) clock {
	c := clock{now: time.Now}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Verifier validates bearer tokens signed with the shared HS256 secret.
type Verifier struct {
	key    []byte
	parser *jwt.Parser
}

// NewVerifier builds a Verifier from the auth config. An empty issuer skips
// the iss check.
func NewVerifier(cfg *config.AuthConfig, opts ...Option) (*Verifier, error) {
	if cfg.JWTSecret == "" {
		return nil, errEmptySecret
	}

	c := newClock(opts)
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if cfg.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.Issuer))
	}

	return &Verifier{
		key:    []byte(cfg.JWTSecret),
		parser: jwt.NewParser(parserOpts...),
	}, nil
}

// Verify parses raw and returns the principal it names. Every failure wraps
// [domain.ErrUnauthorized]; the underlying reason is logged at DEBUG.
func (v *Verifier) Verify(ctx context.Context, raw string) (*identity.Principal, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		logging.FromContext(ctx).DebugContext(ctx, "bearer token rejected",
			slog.String("operation", "token.Verify"),
			slog.String("reason", rejectReason(err)),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, rejectReason(err))
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", domain.ErrUnauthorized)
	}

	return &identity.Principal{
		Subject: claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
	}, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "token not yet valid"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid signature"
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return "unexpected issuer"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "missing required claim"
	default:
		return "invalid token"
	}
}

// Issuer mints access tokens for the local identity provider.
type Issuer struct {
	key      []byte
	issuer   string
	lifetime time.Duration
	clock    clock
}

// NewIssuer builds an Issuer from the auth config.
func NewIssuer(cfg *config.AuthConfig, opts ...Option) (*Issuer, error) {
	if cfg.JWTSecret == "" {
		return nil, errEmptySecret
	}
	if cfg.TokenLifetime <= 0 {
		return nil, fmt.Errorf("token: lifetime must be positive, got %s", cfg.TokenLifetime)
	}

	return &Issuer{
		key:      []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		lifetime: cfg.TokenLifetime,
		clock:    newClock(opts),
	}, nil
}

// Issue signs an access token for user and wraps it in a session.
func (i *Issuer) Issue(user *identity.User) (*identity.Session, error) {
	now := i.clock.now()
	expiresAt := now.Add(i.lifetime)

	claims := Claims{
		Email: user.Email,
		Role:  RoleAuthenticated,
		UserMetadata: map[string]any{
			"name":       user.Name,
			"is_teacher": user.IsTeacher,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   user.ID,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	return &identity.Session{
		AccessToken:  signed,
		TokenType:    TypeBearer,
		RefreshToken: uuid.NewString(),
		ExpiresIn:    int(i.lifetime.Seconds()),
		ExpiresAt:    expiresAt.Truncate(time.Second),
		User:         *user,
	}, nil
}
