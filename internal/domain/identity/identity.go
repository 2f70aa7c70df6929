// Package identity holds the account and session types exchanged with the
// identity provider, and the principal carried by a verified bearer token.
package identity

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
)

// Password length bounds accepted at signup. The upper bound is in bytes,
// the most bcrypt will hash.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Registration is a signup request.
type Registration struct {
	Name      string
	Email     string
	Password  string
	IsTeacher bool
}

// Validate checks the registration fields and returns a
// *domain.ValidationError listing every failing field.
func (r *Registration) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if msg := checkEmail(r.Email); msg != "" {
		fields["email"] = msg
	}
	switch {
	case len(r.Password) < MinPasswordLength:
		fields["password"] = fmt.Sprintf("must be at least %d characters", MinPasswordLength)
	case len(r.Password) > MaxPasswordLength:
		fields["password"] = fmt.Sprintf("must be at most %d bytes", MaxPasswordLength)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Credentials is an email/password login request.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks that both fields are present.
func (c *Credentials) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = domain.MsgRequired
	}
	if c.Password == "" {
		fields["password"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// User is an account as reported by the identity provider.
type User struct {
	ID        string
	Email     string
	Name      string
	IsTeacher bool
	CreatedAt time.Time
}

// Session is the result of a successful login.
type Session struct {
	AccessToken  string
	TokenType    string
	RefreshToken string
	ExpiresIn    int
	ExpiresAt    time.Time
	User         User
}

// Principal is the caller identified by a verified access token.
type Principal struct {
	Subject string
	Email   string
	Role    string
}

// NormalizeEmail lowercases and trims an address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.MsgRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "must be a valid email address"
	}
	return ""
}
