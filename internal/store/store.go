package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/flavono123/valentine/internal/config"
)

var (
	ErrStoreClosed = errors.New("store is closed")
)

// preferenceFile is the JSON file structure.
type preferenceFile struct {
	Values    map[string]string `json:"values"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func emptyPreferences() *preferenceFile {
	return &preferenceFile{Values: map[string]string{}}
}

// Store keeps string preferences in a JSON file under the user config dir.
type Store struct {
	path string
	data *preferenceFile
	mu   sync.RWMutex
}

// StoreOptions configures the store.
type StoreOptions struct {
	DevMode bool
}

// NewStore creates a new store with the default path.
func NewStore(opts ...StoreOptions) (*Store, error) {
	var opt StoreOptions
	if len(opts) > 0 {
		opt = opts[0]
	}

	dir := config.DataDir()
	if opt.DevMode {
		dir += "-dev"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &Store{
		path: filepath.Join(dir, "preferences.json"),
		data: emptyPreferences(),
	}, nil
}

// Load reads the store from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.data = emptyPreferences()
		return nil
	}
	if err != nil {
		return err
	}

	var prefs preferenceFile
	if err := json.Unmarshal(data, &prefs); err != nil {
		// Backup corrupted file and start fresh
		backupPath := s.path + ".backup." + time.Now().Format("20060102150405")
		_ = os.WriteFile(backupPath, data, 0644)
		s.data = emptyPreferences()
		return nil
	}
	if prefs.Values == nil {
		prefs.Values = map[string]string{}
	}

	s.data = &prefs
	return nil
}

// Save writes the store to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Get returns the value for key, or "" when it was never set.
func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.data.Values[key], nil
}

// Set stores value under key and writes the file right away.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	s.data.Values[key] = value
	s.data.UpdatedAt = time.Now()
	s.mu.Unlock()

	return s.Save()
}
