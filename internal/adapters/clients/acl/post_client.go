package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"

	aclpost "github.com/jsamuelsen11/blog-posts-api/internal/adapters/clients/acl/post"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

// restPathPrefix is where the gateway mounts PostgREST.
const restPathPrefix = "/rest/v1/"

// Compile-time interface check.
var _ ports.PostStore = (*PostClient)(nil)

// PostClient is the outbound adapter for the posts table behind PostgREST.
// It implements [ports.PostStore].
//
// Reads select an explicit column list. Writes ask for
// "return=representation" so the affected rows come back in the same round
// trip; an empty representation from a filtered PATCH or DELETE means no row
// matched and is reported as [domain.ErrNotFound].
//
// The underlying [httpclient.Client] provides circuit breaking, OpenTelemetry
// tracing, and health checking for every outbound call.
type PostClient struct {
	req    *Requester
	path   string
	logger *slog.Logger
}

// NewPostClient creates a PostClient for table, authenticating to the
// gateway with apiKey.
func NewPostClient(client *httpclient.Client, table, apiKey string, logger *slog.Logger) *PostClient {
	return &PostClient{
		req:    NewRequester(client, apiKey, logger),
		path:   restPathPrefix + table,
		logger: logger,
	}
}

// List fetches every row in the table's natural order.
func (c *PostClient) List(ctx context.Context) ([]post.Post, error) {
	var rows []aclpost.PostDTO
	if err := c.req.Do(ctx, http.MethodGet, c.url(aclpost.SelectParams()), http.StatusOK, nil, &rows); err != nil {
		return nil, err
	}
	return aclpost.ToDomainPostList(rows), nil
}

// Get fetches the row with the given id.
func (c *PostClient) Get(ctx context.Context, id string) (*post.Post, error) {
	var rows []aclpost.PostDTO
	if err := c.req.Do(ctx, http.MethodGet, c.url(aclpost.ByID(aclpost.SelectParams(), id)), http.StatusOK, nil, &rows); err != nil {
		return nil, idLookupError(err, id)
	}
	return firstRow(rows, id)
}

// Create inserts one row and returns it as stored, with its assigned id.
func (c *PostClient) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	var rows []aclpost.PostDTO
	err := c.req.Do(ctx, http.MethodPost, c.url(aclpost.SelectParams()), http.StatusCreated,
		aclpost.ToCreatePostRequest(p), &rows, WithPrefer(PreferReturnRepresentation))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert returned no representation: %w", domain.ErrUnavailable)
	}
	created := aclpost.ToDomainPost(&rows[0])
	return &created, nil
}

// Update applies patch to the row with the given id.
func (c *PostClient) Update(ctx context.Context, id string, patch post.Patch) (*post.Post, error) {
	var rows []aclpost.PostDTO
	err := c.req.Do(ctx, http.MethodPatch, c.url(aclpost.ByID(aclpost.SelectParams(), id)), http.StatusOK,
		aclpost.ToUpdatePostRequest(patch), &rows, WithPrefer(PreferReturnRepresentation))
	if err != nil {
		return nil, idLookupError(err, id)
	}
	return firstRow(rows, id)
}

// Delete removes the row with the given id.
func (c *PostClient) Delete(ctx context.Context, id string) error {
	params := aclpost.ByID(url.Values{"select": {"id"}}, id)

	var rows []aclpost.IDOnlyDTO
	err := c.req.Do(ctx, http.MethodDelete, c.url(params), http.StatusOK, nil, &rows,
		WithPrefer(PreferReturnRepresentation))
	if err != nil {
		return idLookupError(err, id)
	}
	if len(rows) == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Search fetches the rows matching q with a single or=(...ilike...) filter,
// then drops rows that only matched through a wildcard stand-in.
func (c *PostClient) Search(ctx context.Context, q post.Query) ([]post.Post, error) {
	var rows []aclpost.PostDTO
	if err := c.req.Do(ctx, http.MethodGet, c.url(aclpost.ByQuery(aclpost.SelectParams(), q)), http.StatusOK, nil, &rows); err != nil {
		return nil, err
	}
	posts := aclpost.ToDomainPostList(rows)
	return slices.DeleteFunc(posts, func(p post.Post) bool { return !q.Matches(&p) }), nil
}

// DeleteMany removes every row whose id is in ids with one in.(...) filter
// and returns how many rows were removed.
func (c *PostClient) DeleteMany(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	params := aclpost.ByIDs(url.Values{"select": {"id"}}, ids)

	var rows []aclpost.IDOnlyDTO
	err := c.req.Do(ctx, http.MethodDelete, c.url(params), http.StatusOK, nil, &rows,
		WithPrefer(PreferReturnRepresentation))
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (c *PostClient) url(params url.Values) string {
	return c.path + "?" + params.Encode()
}

// idLookupError reports an id the key column cannot parse as a missing row,
// so every store answers an unknown id the same way.
func idLookupError(err error, id string) error {
	if errors.Is(err, errMalformedValue) {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return err
}

func firstRow(rows []aclpost.PostDTO, id string) (*post.Post, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	p := aclpost.ToDomainPost(&rows[0])
	return &p, nil
}
