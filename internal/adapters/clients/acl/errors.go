// Package acl implements the Anti-Corruption Layer between the database
// service's HTTP APIs (PostgREST for rows, GoTrue for accounts) and domain
// types. Resource translators live in subpackages (acl/post, acl/identity);
// shared request plumbing and error mapping live here.
package acl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// Upstream error codes that override the status-based mapping.
const (
	codeInvalidGrant       = "invalid_grant"
	codeInvalidCredentials = "invalid_credentials"
	codeUserAlreadyExists  = "user_already_exists"
	codeEmailExists        = "email_exists"
	codeWeakPassword       = "weak_password"
	codeEmailInvalid       = "email_address_invalid"
	codeUniqueViolation    = "23505"
	codeNoRows             = "PGRST116"
	codeInvalidText        = "22P02"
)

// errMalformedValue marks a value the database could not parse into the
// column type, such as a non-numeric id against a bigint key.
var errMalformedValue = errors.New("malformed value")

// errorBody is the union of the error shapes the database service emits:
// RFC 9457 problem details, PostgREST {code,message,details,hint}, and
// GoTrue {code,error_code,msg} or OAuth-style {error,error_description}.
type errorBody struct {
	Title  string        `json:"title"`
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`

	// PostgREST sends code as a string; GoTrue sends the HTTP status number.
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Hint    string          `json:"hint"`

	Msg              string `json:"msg"`
	ErrorCode        string `json:"error_code"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// errorDetail represents a single field-level error within an RFC 9457 response.
type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

func (b *errorBody) detail() string {
	for _, s := range []string{b.Detail, b.Message, b.Msg, b.ErrorDescription, b.Error, b.Title} {
		if s != "" {
			return s
		}
	}
	return ""
}

// code returns the most specific machine-readable code in the body.
func (b *errorBody) code() string {
	if b.ErrorCode != "" {
		return b.ErrorCode
	}
	if b.Error != "" {
		return b.Error
	}
	if len(b.Code) > 0 {
		return strings.Trim(string(bytes.TrimSpace(b.Code)), `"`)
	}
	return ""
}

// TranslateHTTPError maps an HTTP error response from the database service
// to a domain error. JSON bodies in any of the supported shapes contribute
// the detail text and, where present, an error code that takes precedence
// over the status. For 400/422 responses with field-level errors, it returns
// a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	eb := parseErrorBody(resp)

	detail := eb.detail()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch eb.code() {
	case codeInvalidGrant, codeInvalidCredentials:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthorized)
	case codeUserAlreadyExists, codeEmailExists, codeUniqueViolation:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case codeWeakPassword:
		return domain.NewValidationError("password", detail)
	case codeEmailInvalid:
		return domain.NewValidationError("email", detail)
	case codeNoRows:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case codeInvalidText:
		return fmt.Errorf("%s: %w: %w", detail, errMalformedValue, domain.ErrValidation)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(eb.Errors) > 0 {
			return toValidationError(eb.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnauthorized)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorBody reads and parses a JSON error body from the response.
// Returns an empty errorBody when the body is absent, not JSON, or malformed.
func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(ct, "json") {
		return errorBody{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return errorBody{}
	}
	return eb
}

// toValidationError converts RFC 9457 error details to a domain ValidationError.
// It strips the "body." prefix from locations to produce clean field names.
func toValidationError(details []errorDetail) *domain.ValidationError {
	fields := make(map[string]string, len(details))
	for _, d := range details {
		field := strings.TrimPrefix(d.Location, "body.")
		fields[field] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
