package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps preferences per user, for sessions served remotely where
// the user has no local config dir of their own. Reads go through a small
// ristretto cache.
type SQLiteStore struct {
	db     *sql.DB
	cache  *ristretto.Cache[string, string]
	mu     sync.RWMutex
	closed bool
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite works best with single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	return &SQLiteStore{db: db, cache: cache}, nil
}

// Migrate creates the database schema.
func (s *SQLiteStore) Migrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	schema := `
	CREATE TABLE IF NOT EXISTS preferences (
		id          TEXT PRIMARY KEY,
		user_name   TEXT NOT NULL,
		pref_key    TEXT NOT NULL,
		value       TEXT NOT NULL,
		updated_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(user_name, pref_key)
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

func cacheKey(user, key string) string {
	return user + "\x00" + key
}

// Get returns the value of key for user, "" when unset.
func (s *SQLiteStore) Get(user, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStoreClosed
	}

	ck := cacheKey(user, key)
	if value, found := s.cache.Get(ck); found {
		return value, nil
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM preferences WHERE user_name = ? AND pref_key = ?`, user, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference: %w", err)
	}

	s.cache.Set(ck, value, int64(len(value))+1)
	return value, nil
}

// Set upserts the value of key for user.
func (s *SQLiteStore) Set(user, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	s.cache.Del(cacheKey(user, key))

	_, err := s.db.Exec(`
		INSERT INTO preferences (id, user_name, pref_key, value, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_name, pref_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		uuid.New().String(), user, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to write preference: %w", err)
	}
	return nil
}

// ForUser scopes the store to one user.
func (s *SQLiteStore) ForUser(user string) *UserStore {
	return &UserStore{store: s, user: user}
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.cache.Close()
	return s.db.Close()
}

// UserStore is a SQLiteStore view bound to a single user.
type UserStore struct {
	store *SQLiteStore
	user  string
}

func (u *UserStore) Get(key string) (string, error) {
	return u.store.Get(u.user, key)
}

func (u *UserStore) Set(key, value string) error {
	return u.store.Set(u.user, key, value)
}
