// Package postgres provides a [ports.PostStore] that talks to PostgreSQL
// directly through a pgx connection pool. The schema is managed by the goose
// migrations embedded in this package.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/config"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PostStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const columns = "id, title, content, author, created_at"

const (
	listSQL   = `SELECT ` + columns + ` FROM posts ORDER BY created_at, id`
	getSQL    = `SELECT ` + columns + ` FROM posts WHERE id = $1`
	insertSQL = `INSERT INTO posts (title, content, author) VALUES ($1, $2, $3) RETURNING ` + columns
	updateSQL = `UPDATE posts SET
		title = COALESCE($2, title),
		content = COALESCE($3, content),
		author = COALESCE($4, author)
		WHERE id = $1 RETURNING ` + columns
	deleteSQL     = `DELETE FROM posts WHERE id = $1`
	deleteManySQL = `DELETE FROM posts WHERE id = ANY($1)`
)

// Store persists posts in PostgreSQL.
type Store struct {
	pool    *pgxpool.Pool
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithMetrics records store operation metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// Open connects the pool and applies pending migrations when
// cfg.MigrateOnStart is set.
func Open(ctx context.Context, cfg *config.PostgresConfig, logger *slog.Logger, opts ...Option) (*Store, error) {
	pool, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		if err := migrateUp(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	s := New(pool, logger, opts...)
	connCfg := pool.Config().ConnConfig
	logger.InfoContext(ctx, "postgres store ready",
		slog.String("host", connCfg.Host),
		slog.String("database", connCfg.Database),
	)
	return s, nil
}

// Connect creates a connection pool sized by cfg and verifies connectivity.
func Connect(ctx context.Context, cfg *config.PostgresConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns) //nolint:gosec // bounded by config validation
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = int32(cfg.MinConns) //nolint:gosec // bounded by config validation
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return pool, nil
}

// New wraps an existing pool. The caller keeps ownership of schema management.
func New(pool *pgxpool.Pool, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{pool: pool, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// List returns every post ordered by creation time.
func (s *Store) List(ctx context.Context) (posts []post.Post, err error) {
	defer s.record(ctx, "posts.list", time.Now(), &err)

	rows, err := s.pool.Query(ctx, listSQL)
	if err != nil {
		return nil, mapError("", err)
	}
	return collect(rows)
}

// Get returns the post with the given id.
func (s *Store) Get(ctx context.Context, id string) (p *post.Post, err error) {
	defer s.record(ctx, "posts.get", time.Now(), &err)

	p, err = scanOne(s.pool.QueryRow(ctx, getSQL, id))
	if err != nil {
		return nil, mapError(id, err)
	}
	return p, nil
}

// Create inserts p and returns the stored row.
func (s *Store) Create(ctx context.Context, p *post.Post) (created *post.Post, err error) {
	defer s.record(ctx, "posts.create", time.Now(), &err)

	created, err = scanOne(s.pool.QueryRow(ctx, insertSQL, p.Title, p.Content, p.Author))
	if err != nil {
		return nil, mapError("", err)
	}
	return created, nil
}

// Update overwrites the fields present in patch.
func (s *Store) Update(ctx context.Context, id string, patch post.Patch) (updated *post.Post, err error) {
	defer s.record(ctx, "posts.update", time.Now(), &err)

	updated, err = scanOne(s.pool.QueryRow(ctx, updateSQL, id, patch.Title, patch.Content, patch.Author))
	if err != nil {
		return nil, mapError(id, err)
	}
	return updated, nil
}

// Delete removes the post with the given id.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	defer s.record(ctx, "posts.delete", time.Now(), &err)

	tag, err := s.pool.Exec(ctx, deleteSQL, id)
	if err != nil {
		return mapError(id, err)
	}
	if tag.RowsAffected() == 0 {
		return mapError(id, pgx.ErrNoRows)
	}
	return nil
}

// Search runs an ILIKE match over the query's fields.
func (s *Store) Search(ctx context.Context, q post.Query) (posts []post.Post, err error) {
	defer s.record(ctx, "posts.search", time.Now(), &err)

	sql, err := searchSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql, q.LikePattern())
	if err != nil {
		return nil, mapError("", err)
	}
	return collect(rows)
}

// DeleteMany removes every listed post in one statement.
func (s *Store) DeleteMany(ctx context.Context, ids []string) (deleted int, err error) {
	defer s.record(ctx, "posts.delete_many", time.Now(), &err)

	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := s.pool.Exec(ctx, deleteManySQL, ids)
	if err != nil {
		return 0, mapError("", err)
	}
	return int(tag.RowsAffected()), nil
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string { return "postgres" }

// HealthCheck implements [ports.HealthChecker] by pinging the pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) record(ctx context.Context, operation string, start time.Time, errp *error) {
	s.metrics.RecordStoreOperation(ctx, operation, start, *errp)
}

// searchSQL builds the WHERE clause for q. The pattern is always bound as $1.
func searchSQL(q post.Query) (string, error) {
	if len(q.Fields) == 0 {
		return "", fmt.Errorf("search query has no fields")
	}

	conds := make([]string, 0, len(q.Fields))
	for _, f := range q.Fields {
		switch f {
		case post.FieldTitle, post.FieldContent:
			conds = append(conds, string(f)+" ILIKE $1")
		default:
			return "", fmt.Errorf("unsupported search field %q", f)
		}
	}
	return `SELECT ` + columns + ` FROM posts WHERE ` + strings.Join(conds, " OR ") +
		` ORDER BY created_at, id`, nil
}

func scanOne(row pgx.Row) (*post.Post, error) {
	var p post.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

func collect(rows pgx.Rows) ([]post.Post, error) {
	posts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (post.Post, error) {
		p, err := scanOne(row)
		if err != nil {
			return post.Post{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, mapError("", err)
	}
	if posts == nil {
		posts = []post.Post{}
	}
	return posts, nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	return m.Up(ctx)
}
