package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Store is the persisted key-value store used for favorites, settings and
// the reading-list fallback. An absent key is (nil, false, nil), never an
// error.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Close() error
}

// JSONStore implements Store as a single JSON file holding a key->blob map.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore backed by the given file path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the storage file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Get reads one key. A missing file behaves like an empty store.
func (s *JSONStore) Get(key string) ([]byte, bool, error) {
	m, err := s.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// Set writes one key and rewrites the whole file.
// Creates the directory if it doesn't exist.
func (s *JSONStore) Set(key string, value []byte) error {
	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = json.RawMessage(value)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Close is a no-op for the file-backed store.
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]json.RawMessage{}
	}
	return m, nil
}

// DefaultJSONPath returns the default store path: ~/.config/tabdash/store.json
func DefaultJSONPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tabdash", "store.json"), nil
}

// Open opens the appropriate storage backend.
// Prefers SQLite if the database file exists, otherwise falls back to JSON.
func Open() (Store, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil {
		return NewSQLiteStore(sqlitePath)
	}

	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStore(jsonPath), nil
}
