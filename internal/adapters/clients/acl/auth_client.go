package acl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	aclidentity "github.com/jsamuelsen11/blog-posts-api/internal/adapters/clients/acl/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

// GoTrue endpoints under the gateway.
const (
	signUpPath = "/auth/v1/signup"
	tokenPath  = "/auth/v1/token?grant_type=password"
)

// Compile-time interface check.
var _ ports.IdentityProvider = (*AuthClient)(nil)

// AuthClient is the outbound adapter for the GoTrue auth API. It implements
// [ports.IdentityProvider]. Bad credentials and duplicate accounts come back
// as [domain.ErrUnauthorized] and [domain.ErrConflict] via
// [TranslateHTTPError].
type AuthClient struct {
	req *Requester
	now func() time.Time
}

// NewAuthClient creates an AuthClient that shares client with the post store.
func NewAuthClient(client *httpclient.Client, apiKey string, logger *slog.Logger) *AuthClient {
	return &AuthClient{
		req: NewRequester(client, apiKey, logger),
		now: time.Now,
	}
}

// SignUp registers a new account. Name and is_teacher are stored as
// user metadata.
func (c *AuthClient) SignUp(ctx context.Context, reg *identity.Registration) (*identity.User, error) {
	var dto aclidentity.SignUpResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, signUpPath, http.StatusOK, aclidentity.ToSignUpRequest(reg), &dto); err != nil {
		return nil, err
	}
	user := aclidentity.ToDomainSignUpUser(&dto)
	return &user, nil
}

// SignIn exchanges an email and password for a session.
func (c *AuthClient) SignIn(ctx context.Context, creds *identity.Credentials) (*identity.Session, error) {
	var dto aclidentity.SessionDTO
	if err := c.req.Do(ctx, http.MethodPost, tokenPath, http.StatusOK, aclidentity.ToSignInRequest(creds), &dto); err != nil {
		return nil, err
	}
	session := aclidentity.ToDomainSession(&dto, c.now())
	return &session, nil
}
