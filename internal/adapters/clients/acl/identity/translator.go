package identity

import (
	"time"

	domidentity "github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
)

// ToSignUpRequest converts a registration to the signup payload. Name and
// is_teacher travel as user metadata.
func ToSignUpRequest(r *domidentity.Registration) SignUpRequestDTO {
	return SignUpRequestDTO{
		Email:    domidentity.NormalizeEmail(r.Email),
		Password: r.Password,
		Data: UserMetadataDTO{
			Name:      r.Name,
			IsTeacher: r.IsTeacher,
		},
	}
}

// ToSignInRequest converts credentials to the password grant payload.
func ToSignInRequest(c *domidentity.Credentials) SignInRequestDTO {
	return SignInRequestDTO{
		Email:    domidentity.NormalizeEmail(c.Email),
		Password: c.Password,
	}
}

// ToDomainUser converts a GoTrue user to a domain User.
func ToDomainUser(dto *UserDTO) domidentity.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, dto.CreatedAt)

	return domidentity.User{
		ID:        dto.ID,
		Email:     dto.Email,
		Name:      dto.UserMetadata.Name,
		IsTeacher: dto.UserMetadata.IsTeacher,
		CreatedAt: createdAt,
	}
}

// ToDomainSignUpUser picks the user out of either signup response shape.
func ToDomainSignUpUser(dto *SignUpResponseDTO) domidentity.User {
	if dto.User != nil {
		return ToDomainUser(dto.User)
	}
	return ToDomainUser(&dto.UserDTO)
}

// ToDomainSession converts a token response to a domain Session. When the
// response omits expires_at it is derived from expires_in and now.
func ToDomainSession(dto *SessionDTO, now time.Time) domidentity.Session {
	expiresAt := time.Unix(dto.ExpiresAt, 0).UTC()
	if dto.ExpiresAt == 0 {
		expiresAt = now.Add(time.Duration(dto.ExpiresIn) * time.Second).UTC().Truncate(time.Second)
	}

	return domidentity.Session{
		AccessToken:  dto.AccessToken,
		TokenType:    dto.TokenType,
		RefreshToken: dto.RefreshToken,
		ExpiresIn:    dto.ExpiresIn,
		ExpiresAt:    expiresAt,
		User:         ToDomainUser(&dto.User),
	}
}
