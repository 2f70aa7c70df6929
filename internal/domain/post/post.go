// Package post defines the blog post entity, partial updates, and the
// substring queries used for keyword search.
package post

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
)

// Field length limits, counted in runes.
const (
	MaxTitleLength  = 200
	MaxAuthorLength = 100
)

// Post is a blog post. The ID and CreatedAt fields are assigned by the store.
type Post struct {
	ID        string
	Title     string
	Content   string
	Author    string
	CreatedAt time.Time
}

// Validate checks business rules for a new Post.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Post) Validate() error {
	fields := make(map[string]string)

	checkText(fields, "title", p.Title, MaxTitleLength)
	checkText(fields, "content", p.Content, 0)
	checkText(fields, "author", p.Author, MaxAuthorLength)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch is a partial replacement of a Post's fields. Nil fields are left unchanged.
type Patch struct {
	Title   *string
	Content *string
	Author  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Author == nil
}

// Validate checks that the patch changes at least one field and that every
// provided field satisfies the same rules as creation.
func (p *Patch) Validate() error {
	if p.IsEmpty() {
		return domain.NewValidationError("body", "at least one of title, content, author is required")
	}

	fields := make(map[string]string)
	if p.Title != nil {
		checkText(fields, "title", *p.Title, MaxTitleLength)
	}
	if p.Content != nil {
		checkText(fields, "content", *p.Content, 0)
	}
	if p.Author != nil {
		checkText(fields, "author", *p.Author, MaxAuthorLength)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply copies the provided fields onto dst.
func (p *Patch) Apply(dst *Post) {
	if p.Title != nil {
		dst.Title = *p.Title
	}
	if p.Content != nil {
		dst.Content = *p.Content
	}
	if p.Author != nil {
		dst.Author = *p.Author
	}
}

// checkText records a message in fields when value is blank or longer than
// maxLen runes. A maxLen of zero disables the length check.
func checkText(fields map[string]string, name, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		fields[name] = domain.MsgRequired
		return
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		fields[name] = fmt.Sprintf("must be at most %d characters", maxLen)
	}
}
