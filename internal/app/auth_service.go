package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService by validating requests and
// delegating to the configured IdentityProvider.
type AuthService struct {
	idp    ports.IdentityProvider
	logger *slog.Logger
}

// NewAuthService creates an AuthService. A nil logger discards output.
func NewAuthService(idp ports.IdentityProvider, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		idp:    idp,
		logger: logger,
	}
}

// SignUp validates and registers a new account.
func (s *AuthService) SignUp(ctx context.Context, reg *identity.Registration) (*identity.User, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "registering user")

	user, err := s.idp.SignUp(ctx, reg)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to register user",
			slog.String("operation", "SignUp"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login validates the credentials and exchanges them for a session.
func (s *AuthService) Login(ctx context.Context, creds *identity.Credentials) (*identity.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	session, err := s.idp.SignIn(ctx, creds)
	if err != nil {
		s.logger.WarnContext(ctx, "login failed",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", session.User.ID))
	return session, nil
}
