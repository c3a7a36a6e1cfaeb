package decodecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"slipstats/internal/replay"
)

// ErrLocked reports that another process holds the cache.
var ErrLocked = errors.New("decode cache is in use by another slipstats process")

// Store manages decoded-match persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Key identifies one version of a replay file on disk.
type Key struct {
	Path      string
	Size      int64
	ModTimeNs int64
}

// KeyFor stats path and builds its cache key.
func KeyFor(path string) (Key, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Key{}, fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Key{}, err
	}
	return Key{Path: abs, Size: info.Size(), ModTimeNs: info.ModTime().UnixNano()}, nil
}

// Stats summarizes cache contents.
type Stats struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
}

// Open acquires the cache lock and opens or creates the database at dbPath.
// It returns ErrLocked when another process already holds the lock.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	lock := flock.New(dbPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps pragmas in effect and serializes writers from
	// concurrent decode workers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.applyMigrations(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database and releases the lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = fmt.Errorf("release cache lock: %w", unlockErr)
		}
	}
	return err
}

// Lookup returns the cached match for key. Entries recorded for a different
// size or modification time are reported as misses.
func (s *Store) Lookup(ctx context.Context, key Key) (*replay.Match, bool, error) {
	var (
		size, modNs int64
		payload     string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT size_bytes, mod_time_ns, match_json FROM matches WHERE path = ?`, key.Path,
	).Scan(&size, &modNs, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup cached match: %w", err)
	}
	if size != key.Size || modNs != key.ModTimeNs {
		return nil, false, nil
	}

	var match replay.Match
	if err := json.Unmarshal([]byte(payload), &match); err != nil {
		return nil, false, fmt.Errorf("decode cached match: %w", err)
	}
	match.Path = key.Path
	return &match, true, nil
}

// Put records match under key, replacing any previous entry for the path.
func (s *Store) Put(ctx context.Context, key Key, match *replay.Match) error {
	if match == nil {
		return errors.New("put cached match: nil match")
	}
	payload, err := json.Marshal(match)
	if err != nil {
		return fmt.Errorf("encode match: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO matches (path, size_bytes, mod_time_ns, match_json, cached_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
            size_bytes = excluded.size_bytes,
            mod_time_ns = excluded.mod_time_ns,
            match_json = excluded.match_json,
            cached_at = excluded.cached_at`,
		key.Path, key.Size, key.ModTimeNs, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store cached match: %w", err)
	}
	return nil
}

// Prune deletes entries whose files no longer exist and returns how many were removed.
func (s *Store) Prune(ctx context.Context) (int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM matches`)
	if err != nil {
		return 0, fmt.Errorf("list cached paths: %w", err)
	}
	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			_ = rows.Close()
			return 0, fmt.Errorf("scan cached path: %w", err)
		}
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return 0, fmt.Errorf("iterate cached paths: %w", err)
	}
	_ = rows.Close()

	for _, path := range stale {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM matches WHERE path = ?`, path); err != nil {
			return 0, fmt.Errorf("prune %s: %w", path, err)
		}
	}
	return len(stale), nil
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM matches`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Stats counts cached entries.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Path: s.path}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM matches`).Scan(&stats.Entries); err != nil {
		return Stats{}, fmt.Errorf("count cached matches: %w", err)
	}
	return stats, nil
}
