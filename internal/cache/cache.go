// Package cache stores generation results in SQLite, keyed by a hash of
// the design document and the options it was generated with.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"

	"github.com/barun-bash/uigen/internal/codegen"
	"github.com/barun-bash/uigen/internal/config"
	"github.com/barun-bash/uigen/internal/version"
)

// MaxAge is how long an entry stays valid.
const MaxAge = 7 * 24 * time.Hour

// Entry is one cached generation result.
type Entry struct {
	Key        string
	RunID      ulid.ULID
	ScreenName string
	Files      []codegen.File
	CreatedAt  time.Time
}

// Store is a SQLite-backed result cache.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultPath returns the cache database under the user cache directory.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("locating cache directory: %w", err)
	}
	return filepath.Join(dir, "uigen", "cache.db"), nil
}

// Open creates or opens the cache database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS results (
		key TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		screen_name TEXT,
		files JSON NOT NULL,
		created_at INTEGER NOT NULL
	);`)
	return err
}

// Key hashes the raw document bytes together with the options that shape
// generated output and the generator build.
func Key(doc []byte, opts config.Options) string {
	h := sha256.New()
	h.Write(doc)
	fmt.Fprintf(h, "\x00%s|%s|%t|%t|%s|%s", version.Fingerprint(), opts.Framework, opts.IncludeIDs, opts.SingleFile, opts.Naming, opts.ImagePlaceholder)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the entry for key. Entries older than MaxAge are deleted and
// reported as missing.
func (s *Store) Get(ctx context.Context, key string) (*Entry, bool, error) {
	var (
		runID, screen string
		files         []byte
		created       int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, screen_name, files, created_at FROM results WHERE key = ?`, key,
	).Scan(&runID, &screen, &files, &created)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache entry: %w", err)
	}

	e := &Entry{Key: key, ScreenName: screen, CreatedAt: time.Unix(0, created)}
	if s.now().Sub(e.CreatedAt) > MaxAge {
		return nil, false, s.Invalidate(ctx, key)
	}
	if e.RunID, err = ulid.Parse(runID); err != nil {
		return nil, false, fmt.Errorf("decoding run id: %w", err)
	}
	if err := json.Unmarshal(files, &e.Files); err != nil {
		return nil, false, fmt.Errorf("decoding cached files: %w", err)
	}
	return e, true, nil
}

// Put stores e, replacing any entry with the same key. A zero CreatedAt is
// set to the current time.
func (s *Store) Put(ctx context.Context, e *Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	files, err := json.Marshal(e.Files)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (key, run_id, screen_name, files, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			run_id=excluded.run_id,
			screen_name=excluded.screen_name,
			files=excluded.files,
			created_at=excluded.created_at
	`, e.Key, e.RunID.String(), e.ScreenName, files, e.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Invalidate removes the entry for key, if any.
func (s *Store) Invalidate(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE key = ?`, key); err != nil {
		return fmt.Errorf("invalidating cache entry: %w", err)
	}
	return nil
}

// Clear removes every entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM results`)
	if err != nil {
		return 0, fmt.Errorf("clearing cache: %w", err)
	}
	return res.RowsAffected()
}

// Prune removes expired entries and returns how many were deleted.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-MaxAge).UnixNano()
	res, err := s.db.ExecContext(ctx, `DELETE FROM results WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning cache: %w", err)
	}
	return res.RowsAffected()
}
