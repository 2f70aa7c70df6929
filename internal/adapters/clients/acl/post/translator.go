package post

import (
	"time"

	dompost "github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
)

// timestampLayouts covers timestamptz output and plain timestamp columns.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07",
}

// ToDomainPost converts a row to a domain Post. An unparseable created_at
// leaves CreatedAt at its zero value.
func ToDomainPost(dto *PostDTO) dompost.Post {
	return dompost.Post{
		ID:        string(dto.ID),
		Title:     dto.Title,
		Content:   dto.Content,
		Author:    dto.Author,
		CreatedAt: parseTimestamp(dto.CreatedAt),
	}
}

// ToDomainPostList converts rows to domain Posts, preserving order.
func ToDomainPostList(dtos []PostDTO) []dompost.Post {
	posts := make([]dompost.Post, len(dtos))
	for i := range dtos {
		posts[i] = ToDomainPost(&dtos[i])
	}
	return posts
}

// ToCreatePostRequest converts a domain Post to the insert payload.
func ToCreatePostRequest(p *dompost.Post) CreatePostRequestDTO {
	return CreatePostRequestDTO{
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author,
	}
}

// ToUpdatePostRequest converts a patch to the PATCH payload.
func ToUpdatePostRequest(patch dompost.Patch) UpdatePostRequestDTO {
	return UpdatePostRequestDTO{
		Title:   patch.Title,
		Content: patch.Content,
		Author:  patch.Author,
	}
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
