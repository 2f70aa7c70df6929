// Package identity implements the Anti-Corruption Layer translators for the
// GoTrue auth API's users and sessions.
package identity

// UserMetadataDTO is the free-form profile stored alongside a GoTrue user.
type UserMetadataDTO struct {
	Name      string `json:"name,omitempty"`
	IsTeacher bool   `json:"is_teacher,omitempty"`
}

// SignUpRequestDTO is the body of POST /auth/v1/signup.
type SignUpRequestDTO struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Data     UserMetadataDTO `json:"data"`
}

// SignInRequestDTO is the body of POST /auth/v1/token?grant_type=password.
type SignInRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO matches the GoTrue user object.
type UserDTO struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Role         string          `json:"role,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	UserMetadata UserMetadataDTO `json:"user_metadata"`
}

// SessionDTO matches the GoTrue token response.
type SessionDTO struct {
	AccessToken  string  `json:"access_token"`
	TokenType    string  `json:"token_type"`
	ExpiresIn    int     `json:"expires_in"`
	ExpiresAt    int64   `json:"expires_at,omitempty"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

// SignUpResponseDTO covers both signup shapes: a bare user when email
// confirmation is pending, or a session wrapping the user when the project
// auto-confirms.
type SignUpResponseDTO struct {
	UserDTO
	User *UserDTO `json:"user,omitempty"`
}
