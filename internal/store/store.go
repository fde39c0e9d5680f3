// Package store is the client-local key-value store backed by a SQLite file.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/matheuskafuri/hunttech/internal/user"
)

// Keys used by the reader.
const (
	KeyUser        = "hunttech_user"
	KeyTheme       = "hunttech_theme"
	KeyLastRefresh = "last_refresh"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

var (
	ErrNotFound     = errors.New("key not found")
	ErrInvalidTheme = errors.New("theme must be dark or light")
)

type Store struct {
	db   *sql.DB
	path string
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: dbPath}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS fetches (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			fetched_at TEXT NOT NULL,
			language   TEXT NOT NULL,
			category   TEXT NOT NULL,
			status     TEXT NOT NULL,
			items      INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_fetches_fetched_at ON fetches(fetched_at DESC);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path is the database file location.
func (s *Store) Path() string { return s.path }

func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// LoadUser returns the stored user, ErrNotFound when nobody is logged in,
// or an error when the record is corrupt.
func (s *Store) LoadUser() (user.User, error) {
	raw, err := s.Get(KeyUser)
	if err != nil {
		return user.User{}, err
	}
	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return user.User{}, fmt.Errorf("decoding stored user: %w", err)
	}
	if err := u.Validate(); err != nil {
		return user.User{}, fmt.Errorf("stored user: %w", err)
	}
	return u, nil
}

func (s *Store) SaveUser(u user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	return s.Set(KeyUser, string(data))
}

func (s *Store) DeleteUser() error {
	return s.Delete(KeyUser)
}

// Theme returns the saved theme, or "" when none is saved or the value is
// not one of the two literals.
func (s *Store) Theme() (string, error) {
	v, err := s.Get(KeyTheme)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if v != ThemeDark && v != ThemeLight {
		return "", nil
	}
	return v, nil
}

func (s *Store) SetTheme(value string) error {
	if value != ThemeDark && value != ThemeLight {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, value)
	}
	return s.Set(KeyTheme, value)
}

func (s *Store) SetLastRefresh(t time.Time) error {
	return s.Set(KeyLastRefresh, t.UTC().Format(time.RFC3339))
}

// LastRefresh returns the zero time when no fetch has been recorded.
func (s *Store) LastRefresh() (time.Time, error) {
	v, err := s.Get(KeyLastRefresh)
	if errors.Is(err, ErrNotFound) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing last refresh: %w", err)
	}
	return t, nil
}

// FetchRecord is one row of the fetch history.
type FetchRecord struct {
	FetchedAt time.Time
	Language  string
	Category  string
	Status    string
	Items     int
}

// RecordFetch appends to the fetch history and stamps the last refresh.
func (s *Store) RecordFetch(r FetchRecord) error {
	if r.FetchedAt.IsZero() {
		r.FetchedAt = time.Now()
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning fetch record: %w", err)
	}
	defer tx.Rollback()

	ts := r.FetchedAt.UTC().Format(time.RFC3339)
	if _, err := tx.Exec(`
		INSERT INTO fetches (fetched_at, language, category, status, items)
		VALUES (?, ?, ?, ?, ?)
	`, ts, r.Language, r.Category, r.Status, r.Items); err != nil {
		return fmt.Errorf("recording fetch: %w", err)
	}
	if _, err := tx.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, KeyLastRefresh, ts, ts); err != nil {
		return fmt.Errorf("stamping last refresh: %w", err)
	}
	return tx.Commit()
}

// RecentFetches returns up to limit history rows, newest first.
func (s *Store) RecentFetches(limit int) ([]FetchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT fetched_at, language, category, status, items
		FROM fetches ORDER BY fetched_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying fetches: %w", err)
	}
	defer rows.Close()

	var out []FetchRecord
	for rows.Next() {
		var (
			r  FetchRecord
			ts string
		)
		if err := rows.Scan(&ts, &r.Language, &r.Category, &r.Status, &r.Items); err != nil {
			return nil, fmt.Errorf("scanning fetch: %w", err)
		}
		if r.FetchedAt, err = time.Parse(time.RFC3339, ts); err != nil {
			return nil, fmt.Errorf("parsing fetched_at %q: %w", ts, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats summarizes what the store holds.
type Stats struct {
	Keys        int
	Fetches     int
	Failed      int
	LastRefresh time.Time
	SizeBytes   int64
}

func (s *Store) Stats() (Stats, error) {
	var st Stats
	if err := s.db.QueryRow("SELECT COUNT(*) FROM kv").Scan(&st.Keys); err != nil {
		return st, fmt.Errorf("counting keys: %w", err)
	}
	if err := s.db.QueryRow("SELECT COUNT(*), COALESCE(SUM(status = 'failed'), 0) FROM fetches").Scan(&st.Fetches, &st.Failed); err != nil {
		return st, fmt.Errorf("counting fetches: %w", err)
	}
	last, err := s.LastRefresh()
	if err != nil {
		return st, err
	}
	st.LastRefresh = last
	if info, err := os.Stat(s.path); err == nil {
		st.SizeBytes = info.Size()
	}
	return st, nil
}

// PruneFetches drops history older than maxAge and returns how many rows went.
func (s *Store) PruneFetches(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).UTC().Format(time.RFC3339)
	res, err := s.db.Exec("DELETE FROM fetches WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning fetches: %w", err)
	}
	return res.RowsAffected()
}
