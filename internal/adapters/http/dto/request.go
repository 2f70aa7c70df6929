package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/identity"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
)

// validate is shared by every request DTO. Field names in errors use the
// json tag so they match what the client sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// CreatePostRequest represents the JSON body for creating a post.
type CreatePostRequest struct {
	Title   string `json:"title"   validate:"required,notblank,max=200"`
	Content string `json:"content" validate:"required,notblank"`
	Author  string `json:"author"  validate:"required,notblank,max=100"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreatePostRequest) Validate() error {
	return structErrors(validate.Struct(r))
}

// ToDomain converts the request to a post ready for the service layer.
func (r *CreatePostRequest) ToDomain() *post.Post {
	return &post.Post{
		Title:   r.Title,
		Content: r.Content,
		Author:  r.Author,
	}
}

// UpdatePostRequest represents the JSON body for PUT and PATCH.
// All fields are optional; nil means "do not change this field".
type UpdatePostRequest struct {
	Title   *string `json:"title,omitempty"   validate:"omitnil,notblank,max=200"`
	Content *string `json:"content,omitempty" validate:"omitnil,notblank"`
	Author  *string `json:"author,omitempty"  validate:"omitnil,notblank,max=100"`
}

// Validate checks that any provided fields have valid values and that at
// least one field is present.
func (r *UpdatePostRequest) Validate() error {
	if err := structErrors(validate.Struct(r)); err != nil {
		return err
	}
	if r.Title == nil && r.Content == nil && r.Author == nil {
		return domain.NewValidationError("body", "at least one of title, content, author is required")
	}
	return nil
}

// ToPatch converts the request to a domain patch.
func (r *UpdatePostRequest) ToPatch() post.Patch {
	return post.Patch{
		Title:   r.Title,
		Content: r.Content,
		Author:  r.Author,
	}
}

// SignUpRequest represents the JSON body for POST /auth/signup.
// The teacher flag is accepted as is_teacher or isTeacher; either one set
// to true marks the account as a teacher.
type SignUpRequest struct {
	Name           string `json:"name"       validate:"required,notblank"`
	Email          string `json:"email"      validate:"required,email"`
	Password       string `json:"password"   validate:"required,min=6,max=72"`
	IsTeacher      bool   `json:"is_teacher"`
	IsTeacherCamel bool   `json:"isTeacher"`
}

// Validate checks the signup fields.
func (r *SignUpRequest) Validate() error {
	return structErrors(validate.Struct(r))
}

// ToDomain converts the request to a registration.
func (r *SignUpRequest) ToDomain() *identity.Registration {
	return &identity.Registration{
		Name:      strings.TrimSpace(r.Name),
		Email:     strings.TrimSpace(r.Email),
		Password:  r.Password,
		IsTeacher: r.IsTeacher || r.IsTeacherCamel,
	}
}

// LoginRequest represents the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	return structErrors(validate.Struct(r))
}

// ToDomain converts the request to credentials.
func (r *LoginRequest) ToDomain() *identity.Credentials {
	return &identity.Credentials{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// structErrors converts validator output into a *domain.ValidationError.
func structErrors(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return domain.MsgRequired
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
