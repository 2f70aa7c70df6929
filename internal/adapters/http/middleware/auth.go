package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/logging"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

const bearerPrefix = "bearer "

// principalKey is the context key for the verified caller.
type principalKey struct{}

// WithPrincipal returns a new context carrying the verified caller.
func WithPrincipal(ctx context.Context, p *identity.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the verified caller, or nil for an anonymous
// request.
func PrincipalFromContext(ctx context.Context) *identity.Principal {
	if p, ok := ctx.Value(principalKey{}).(*identity.Principal); ok {
		return p
	}
	return nil
}

// Authenticate returns middleware that verifies the Authorization bearer
// token. A present token must verify or the request is rejected with 401.
// When enforce is set, a missing token is rejected too; otherwise the
// request continues anonymously.
//
// A verified token is forwarded on outbound calls so the database applies
// its row-level policies as that user.
func Authenticate(verifier ports.TokenVerifier, enforce bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, present := bearerToken(r)
			if !present {
				if enforce {
					dto.WriteErrorResponse(w, r,
						fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if raw == "" {
				dto.WriteErrorResponse(w, r,
					fmt.Errorf("%w: malformed authorization header", domain.ErrUnauthorized))
				return
			}

			ctx := r.Context()
			principal, err := verifier.Verify(ctx, raw)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx = WithPrincipal(ctx, principal)
			ctx = httpclient.WithAccessToken(ctx, raw)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With(
				slog.String("subject", principal.Subject),
			))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer" header.
// A header with another scheme or an empty token counts as present so that
// it is rejected rather than silently ignored.
func bearerToken(r *http.Request) (string, bool) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if h == "" {
		return "", false
	}
	if len(h) < len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return "", true
	}
	return strings.TrimSpace(h[len(bearerPrefix):]), true
}
