package dto_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/blog-posts-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestCreatePostRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.CreatePostRequest{Title: "Test Post", Content: "This is a test post.", Author: "Test Author"}

	tests := []struct {
		name      string
		mutate    func(r *dto.CreatePostRequest)
		wantErr   bool
		wantField string
	}{
		{name: "valid request passes", mutate: func(*dto.CreatePostRequest) {}},
		{name: "missing title", mutate: func(r *dto.CreatePostRequest) { r.Title = "" }, wantErr: true, wantField: "title"},
		{name: "whitespace title", mutate: func(r *dto.CreatePostRequest) { r.Title = " \t" }, wantErr: true, wantField: "title"},
		{name: "title too long", mutate: func(r *dto.CreatePostRequest) { r.Title = strings.Repeat("t", 201) }, wantErr: true, wantField: "title"},
		{name: "title at limit", mutate: func(r *dto.CreatePostRequest) { r.Title = strings.Repeat("é", 200) }},
		{name: "missing content", mutate: func(r *dto.CreatePostRequest) { r.Content = "" }, wantErr: true, wantField: "content"},
		{name: "missing author", mutate: func(r *dto.CreatePostRequest) { r.Author = "" }, wantErr: true, wantField: "author"},
		{name: "author too long", mutate: func(r *dto.CreatePostRequest) { r.Author = strings.Repeat("a", 101) }, wantErr: true, wantField: "author"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)
			err := req.Validate()

			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestCreatePostRequest_Validate_ReportsEveryField(t *testing.T) {
	t.Parallel()

	req := dto.CreatePostRequest{}
	err := req.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	for _, field := range []string{"title", "content", "author"} {
		if verr.Fields[field] != domain.MsgRequired {
			t.Errorf("Fields[%q] = %q, want %q", field, verr.Fields[field], domain.MsgRequired)
		}
	}
}

func TestCreatePostRequest_ToDomain(t *testing.T) {
	t.Parallel()

	req := dto.CreatePostRequest{Title: "T", Content: "C", Author: "A"}
	p := req.ToDomain()

	if p.Title != "T" || p.Content != "C" || p.Author != "A" || p.ID != "" {
		t.Errorf("ToDomain() = %+v", p)
	}
}

func TestUpdatePostRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdatePostRequest
		wantErr   bool
		wantField string
	}{
		{name: "single field passes", req: dto.UpdatePostRequest{Title: stringPtr("New")}},
		{name: "all fields pass", req: dto.UpdatePostRequest{Title: stringPtr("T"), Content: stringPtr("C"), Author: stringPtr("A")}},
		{name: "empty body fails", req: dto.UpdatePostRequest{}, wantErr: true, wantField: "body"},
		{name: "blank title fails", req: dto.UpdatePostRequest{Title: stringPtr("  ")}, wantErr: true, wantField: "title"},
		{name: "empty content fails", req: dto.UpdatePostRequest{Content: stringPtr("")}, wantErr: true, wantField: "content"},
		{name: "long author fails", req: dto.UpdatePostRequest{Author: stringPtr(strings.Repeat("x", 101))}, wantErr: true, wantField: "author"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestUpdatePostRequest_ToPatch(t *testing.T) {
	t.Parallel()

	req := dto.UpdatePostRequest{Content: stringPtr("body")}
	patch := req.ToPatch()

	if patch.Title != nil || patch.Author != nil {
		t.Error("ToPatch() set fields that were not provided")
	}
	if patch.Content == nil || *patch.Content != "body" {
		t.Errorf("ToPatch().Content = %v, want %q", patch.Content, "body")
	}
}

func TestSignUpRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.SignUpRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1", IsTeacher: true}

	tests := []struct {
		name      string
		mutate    func(r *dto.SignUpRequest)
		wantErr   bool
		wantField string
	}{
		{name: "valid request passes", mutate: func(*dto.SignUpRequest) {}},
		{name: "missing name", mutate: func(r *dto.SignUpRequest) { r.Name = " " }, wantErr: true, wantField: "name"},
		{name: "malformed email", mutate: func(r *dto.SignUpRequest) { r.Email = "not-an-email" }, wantErr: true, wantField: "email"},
		{name: "short password", mutate: func(r *dto.SignUpRequest) { r.Password = "12345" }, wantErr: true, wantField: "password"},
		{name: "long password", mutate: func(r *dto.SignUpRequest) { r.Password = strings.Repeat("p", 73) }, wantErr: true, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)
			err := req.Validate()

			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestSignUpRequest_ToDomain(t *testing.T) {
	t.Parallel()

	req := dto.SignUpRequest{Name: " Ana ", Email: " ana@example.com", Password: " pw with spaces ", IsTeacher: true}
	reg := req.ToDomain()

	if reg.Name != "Ana" || reg.Email != "ana@example.com" {
		t.Errorf("ToDomain() did not trim name/email: %+v", reg)
	}
	if reg.Password != " pw with spaces " {
		t.Errorf("ToDomain() altered password: %q", reg.Password)
	}
	if !reg.IsTeacher {
		t.Error("ToDomain() dropped is_teacher")
	}
}

func TestSignUpRequest_AcceptsCamelCaseTeacherFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "snake case", body: `{"is_teacher":true}`, want: true},
		{name: "camel case", body: `{"isTeacher":true}`, want: true},
		{name: "absent", body: `{}`, want: false},
		{name: "both false", body: `{"is_teacher":false,"isTeacher":false}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.SignUpRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := req.ToDomain().IsTeacher; got != tt.want {
				t.Errorf("IsTeacher = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.LoginRequest{Password: "x"}).Validate(), "email")
	requireValidationField(t, (&dto.LoginRequest{Email: "a@b.co"}).Validate(), "password")

	if err := (&dto.LoginRequest{Email: "a@b.co", Password: "x"}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
