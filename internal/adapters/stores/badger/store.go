// Package badger provides a [ports.PostStore] backed by an embedded Badger
// database. Posts are stored as JSON under sequence-numbered keys so that
// prefix iteration yields insertion order.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/jsamuelsen11/blog-posts-api/internal/domain"
	"github.com/jsamuelsen11/blog-posts-api/internal/domain/post"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/config"
	"github.com/jsamuelsen11/blog-posts-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/blog-posts-api/internal/ports"
)

const (
	postKeyPrefix = "post:"
	sequenceKey   = "seq:post"

	// sequenceBandwidth is how many ids are leased from disk at a time.
	sequenceBandwidth = 100
)

// Compile-time interface checks.
var (
	_ ports.PostStore     = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

var errClosed = errors.New("badger database is closed")

// record is the on-disk representation of a post.
type record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists posts in Badger.
type Store struct {
	db      *badgerdb.DB
	seq     *badgerdb.Sequence
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithMetrics records store operation metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithClock overrides the clock used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (or creates) the database described by cfg.
func Open(cfg *config.BadgerConfig, logger *slog.Logger, opts ...Option) (*Store, error) {
	bopts := badgerdb.DefaultOptions(cfg.Path).WithLogger(&slogAdapter{logger: logger})
	if cfg.InMemory {
		bopts = bopts.WithDir("").WithValueDir("").WithInMemory(true)
	}

	db, err := badgerdb.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("opening badger at %q: %w", cfg.Path, err)
	}

	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("leasing post sequence: %w", err)
	}

	s := &Store{
		db:     db,
		seq:    seq,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the unused part of the id lease and closes the database.
func (s *Store) Close() error {
	return errors.Join(s.seq.Release(), s.db.Close())
}

// List returns every post in insertion order.
func (s *Store) List(ctx context.Context) (posts []post.Post, err error) {
	defer s.record(ctx, "posts.list", time.Now(), &err)

	return s.scan(func(*post.Post) bool { return true })
}

// Get returns the post with the given id.
func (s *Store) Get(ctx context.Context, id string) (p *post.Post, err error) {
	defer s.record(ctx, "posts.get", time.Now(), &err)

	k, err := keyFor(id)
	if err != nil {
		return nil, err
	}

	var rec record
	err = s.db.View(func(txn *badgerdb.Txn) error {
		return readRecord(txn, k, &rec)
	})
	if err != nil {
		return nil, s.translate(id, err)
	}
	return rec.toDomain(), nil
}

// Create assigns the next sequence number as the post's id and stores it.
func (s *Store) Create(ctx context.Context, p *post.Post) (created *post.Post, err error) {
	defer s.record(ctx, "posts.create", time.Now(), &err)

	n, err := s.seq.Next()
	if err != nil {
		return nil, fmt.Errorf("allocating post id: %w", err)
	}
	// Sequences start at zero; ids start at one.
	n++

	rec := record{
		ID:        strconv.FormatUint(n, 10),
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: s.now().UTC(),
	}

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		return writeRecord(txn, key(n), &rec)
	})
	if err != nil {
		return nil, s.translate(rec.ID, err)
	}

	s.logger.DebugContext(ctx, "post stored", slog.String("post_id", rec.ID))
	return rec.toDomain(), nil
}

// Update applies patch inside a read-write transaction.
func (s *Store) Update(ctx context.Context, id string, patch post.Patch) (updated *post.Post, err error) {
	defer s.record(ctx, "posts.update", time.Now(), &err)

	k, err := keyFor(id)
	if err != nil {
		return nil, err
	}

	var rec record
	err = s.db.Update(func(txn *badgerdb.Txn) error {
		if err := readRecord(txn, k, &rec); err != nil {
			return err
		}
		p := rec.toDomain()
		patch.Apply(p)
		rec = fromDomain(p)
		return writeRecord(txn, k, &rec)
	})
	if err != nil {
		return nil, s.translate(id, err)
	}
	return rec.toDomain(), nil
}

// Delete removes the post with the given id.
func (s *Store) Delete(ctx context.Context, id string) (err error) {
	defer s.record(ctx, "posts.delete", time.Now(), &err)

	k, err := keyFor(id)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		if _, err := txn.Get(k); err != nil {
			return err
		}
		return txn.Delete(k)
	})
	if err != nil {
		return s.translate(id, err)
	}
	return nil
}

// Search returns the posts matching q in insertion order.
func (s *Store) Search(ctx context.Context, q post.Query) (posts []post.Post, err error) {
	defer s.record(ctx, "posts.search", time.Now(), &err)

	return s.scan(q.Matches)
}

// DeleteMany removes every listed post that exists in one transaction.
func (s *Store) DeleteMany(ctx context.Context, ids []string) (deleted int, err error) {
	defer s.record(ctx, "posts.delete_many", time.Now(), &err)

	if len(ids) == 0 {
		return 0, nil
	}

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		deleted = 0
		for _, id := range ids {
			k, err := keyFor(id)
			if err != nil {
				continue
			}
			if _, err := txn.Get(k); errors.Is(err, badgerdb.ErrKeyNotFound) {
				continue
			} else if err != nil {
				return err
			}
			if err := txn.Delete(k); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, s.translate("", err)
	}
	return deleted, nil
}

// Name implements [ports.HealthChecker].
func (s *Store) Name() string { return "badger" }

// HealthCheck implements [ports.HealthChecker].
func (s *Store) HealthCheck(_ context.Context) error {
	if s.db.IsClosed() {
		return errClosed
	}
	return nil
}

// scan iterates every post key in order and keeps those accepted by keep.
func (s *Store) scan(keep func(*post.Post) bool) ([]post.Post, error) {
	out := make([]post.Post, 0)
	prefix := []byte(postKeyPrefix)

	err := s.db.View(func(txn *badgerdb.Txn) error {
		it := txn.NewIterator(badgerdb.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return fmt.Errorf("decoding %s: %w", it.Item().Key(), err)
			}
			if p := rec.toDomain(); keep(p) {
				out = append(out, *p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.translate("", err)
	}
	return out, nil
}

func (s *Store) record(ctx context.Context, operation string, start time.Time, errp *error) {
	s.metrics.RecordStoreOperation(ctx, operation, start, *errp)
}

// translate maps Badger errors onto domain errors.
func (s *Store) translate(id string, err error) error {
	switch {
	case errors.Is(err, badgerdb.ErrKeyNotFound):
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	case errors.Is(err, badgerdb.ErrDBClosed):
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	default:
		return err
	}
}

func key(n uint64) []byte {
	return fmt.Appendf(nil, "%s%020d", postKeyPrefix, n)
}

// keyFor parses an id. Anything that is not a positive integer in canonical
// decimal form ("7", never "07" or "+7") cannot name a stored post and is
// reported as not found.
func keyFor(id string) ([]byte, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 || strconv.FormatUint(n, 10) != id {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	return key(n), nil
}

func readRecord(txn *badgerdb.Txn, k []byte, rec *record) error {
	item, err := txn.Get(k)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, rec)
	})
}

func writeRecord(txn *badgerdb.Txn, k []byte, rec *record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding post: %w", err)
	}
	return txn.Set(k, data)
}

func (r *record) toDomain() *post.Post {
	return &post.Post{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Author:    r.Author,
		CreatedAt: r.CreatedAt,
	}
}

func fromDomain(p *post.Post) record {
	return record{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		CreatedAt: p.CreatedAt,
	}
}
