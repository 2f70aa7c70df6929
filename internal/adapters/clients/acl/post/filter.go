package post

import (
	"net/url"
	"strings"

	dompost "github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
)

// quoteEscaper escapes the characters PostgREST treats specially inside a
// double-quoted filter value.
var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(v string) string {
	return `"` + quoteEscaper.Replace(v) + `"`
}

// SelectParams returns the base query string for reads.
func SelectParams() url.Values {
	v := url.Values{}
	v.Set("select", Columns)
	return v
}

// ByID adds an equality filter on id.
func ByID(v url.Values, id string) url.Values {
	v.Set("id", "eq."+id)
	return v
}

// ByIDs adds an in filter over ids.
func ByIDs(v url.Values, ids []string) url.Values {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = quote(id)
	}
	v.Set("id", "in.("+strings.Join(quoted, ",")+")")
	return v
}

// ByQuery adds an or filter matching the query's ILIKE pattern against each
// of its fields, e.g. or=(title.ilike."%go%",content.ilike."%go%").
//
// PostgREST reads * in a like value as %, with no escape. A literal * in the
// term is sent as the single-character wildcard _ instead, so the filter can
// over-match at that position; callers narrow the rows with Query.Matches.
func ByQuery(v url.Values, q dompost.Query) url.Values {
	pattern := quote(strings.ReplaceAll(q.LikePattern(), "*", "_"))
	conds := make([]string, len(q.Fields))
	for i, f := range q.Fields {
		conds[i] = string(f) + ".ilike." + pattern
	}
	v.Set("or", "("+strings.Join(conds, ",")+")")
	return v
}
