// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
)

// Messages returned alongside auth payloads.
const (
	MsgSignedUp = "User registered successfully"
	MsgLoggedIn = "Login successful"
)

// PostResponse represents a single post in HTTP responses.
type PostResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ToPostResponse converts a domain Post to an HTTP response DTO.
func ToPostResponse(p *post.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

// ToPostListResponse converts posts to a bare JSON array. An empty input
// yields an empty array, never null.
func ToPostListResponse(posts []post.Post) []PostResponse {
	items := make([]PostResponse, len(posts))
	for i := range posts {
		items[i] = ToPostResponse(&posts[i])
	}
	return items
}

// PurgeResponse reports how many posts a bulk delete removed.
type PurgeResponse struct {
	Deleted int `json:"deleted"`
}

// UserResponse represents an account in HTTP responses.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	IsTeacher bool   `json:"is_teacher"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsTeacher: u.IsTeacher,
		CreatedAt: formatTime(u.CreatedAt),
	}
}

// SignUpResponse is the body of a successful signup.
type SignUpResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// SessionResponse mirrors the session object of the identity provider.
type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message string          `json:"message"`
	Session SessionResponse `json:"session"`
	User    UserResponse    `json:"user"`
}

// ToLoginResponse converts a domain Session to the login body.
func ToLoginResponse(s *identity.Session) LoginResponse {
	var expiresAt int64
	if !s.ExpiresAt.IsZero() {
		expiresAt = s.ExpiresAt.Unix()
	}
	return LoginResponse{
		Message: MsgLoggedIn,
		Session: SessionResponse{
			AccessToken:  s.AccessToken,
			TokenType:    s.TokenType,
			ExpiresIn:    s.ExpiresIn,
			ExpiresAt:    expiresAt,
			RefreshToken: s.RefreshToken,
		},
		User: ToUserResponse(&s.User),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
