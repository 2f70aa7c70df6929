// Package post implements the Anti-Corruption Layer translators for rows of
// the posts table as exposed by PostgREST.
package post

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Columns is the select list requested for every read and representation.
const Columns = "id,title,content,author,created_at"

// ID accepts either a JSON string (uuid, text) or a JSON number (bigint
// identity) and carries it as text.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding post id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding post id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// PostDTO matches a row of the posts table.
type PostDTO struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreatePostRequestDTO is the insert payload. The id and created_at columns
// are left to their database defaults.
type CreatePostRequestDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// UpdatePostRequestDTO is the PATCH payload. Nil fields are omitted so the
// stored column is left untouched.
type UpdatePostRequestDTO struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Author  *string `json:"author,omitempty"`
}

// IDOnlyDTO is the representation returned when only ids are selected.
type IDOnlyDTO struct {
	ID ID `json:"id"`
}
