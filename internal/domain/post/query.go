package post

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
)

// MaxTermLength bounds a search term, counted in runes.
const MaxTermLength = 200

// Field names a searchable Post column.
type Field string

const (
	FieldTitle   Field = "title"
	FieldContent Field = "content"
)

// Query is a case-insensitive substring match over one or more fields.
// A Post matches when any of the fields contains Term; prefix queries
// require the field to start with Term instead.
type Query struct {
	Term   string
	Fields []Field
	Prefix bool
}

// NewKeywordQuery builds the query behind GET /posts/search: the trimmed term
// matched anywhere in the title or the content.
func NewKeywordQuery(term string) (Query, error) {
	term, err := normalizeTerm("q", term)
	if err != nil {
		return Query{}, err
	}
	return Query{Term: term, Fields: []Field{FieldTitle, FieldContent}}, nil
}

// NewTitlePrefixQuery builds a query matching posts whose title starts with prefix.
func NewTitlePrefixQuery(prefix string) (Query, error) {
	// Leading whitespace is significant for a prefix, so only reject blanks.
	if strings.TrimSpace(prefix) == "" {
		return Query{}, domain.NewValidationError("title_prefix", domain.MsgRequired)
	}
	if utf8.RuneCountInString(prefix) > MaxTermLength {
		return Query{}, domain.NewValidationError("title_prefix",
			fmt.Sprintf("must be at most %d characters", MaxTermLength))
	}
	return Query{Term: prefix, Fields: []Field{FieldTitle}, Prefix: true}, nil
}

func normalizeTerm(param, term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", domain.NewValidationError(param, domain.MsgRequired)
	}
	if utf8.RuneCountInString(term) > MaxTermLength {
		return "", domain.NewValidationError(param,
			fmt.Sprintf("must be at most %d characters", MaxTermLength))
	}
	return term, nil
}

// likeEscaper escapes LIKE metacharacters using the default backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern returns the ILIKE pattern for the query, with the term's own
// metacharacters escaped so they match literally.
func (q Query) LikePattern() string {
	escaped := likeEscaper.Replace(q.Term)
	if q.Prefix {
		return escaped + "%"
	}
	return "%" + escaped + "%"
}

// Matches reports whether p satisfies the query.
func (q Query) Matches(p *Post) bool {
	needle := strings.ToLower(q.Term)
	for _, f := range q.Fields {
		hay := strings.ToLower(p.value(f))
		if q.Prefix && strings.HasPrefix(hay, needle) {
			return true
		}
		if !q.Prefix && strings.Contains(hay, needle) {
			return true
		}
	}
	return false
}

func (p *Post) value(f Field) string {
	switch f {
	case FieldTitle:
		return p.Title
	case FieldContent:
		return p.Content
	default:
		return ""
	}
}
