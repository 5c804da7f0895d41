// Package readinglist stores read-later entries. A host-backed provider
// is the source of truth when present; otherwise entries fall back to
// the key-value store with the URL as identity and a locally assigned
// add timestamp.
package readinglist

import (
	"encoding/json"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/tabdash/tabdash/internal/storage"
)

// storeKey is the key the fallback blob lives under in the Store.
const storeKey = "readinglist"

// Entry is one read-later item. URL doubles as the identity.
type Entry struct {
	URL     string    `json:"url"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"addedAt"`
	Read    bool      `json:"read"`
}

// Provider is the host reading-list API.
type Provider interface {
	Query() ([]Entry, error)
	AddEntry(e Entry) error
	RemoveEntry(url string) error
}

// Manager fronts whichever provider is available. Query failures are
// logged and substituted with an empty list so the UI always renders.
type Manager struct {
	provider Provider
	log      *zap.Logger
}

// NewManager creates a Manager over the given provider. A nil provider
// selects the key-value fallback.
func NewManager(provider Provider, store storage.Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	if provider == nil {
		provider = &KVFallback{store: store}
	}
	return &Manager{provider: provider, log: log}
}

// Entries returns the current reading list, newest first. A provider
// failure degrades to an empty list.
func (m *Manager) Entries() []Entry {
	entries, err := m.provider.Query()
	if err != nil {
		m.log.Warn("reading list query failed", zap.Error(err))
		return []Entry{}
	}
	return entries
}

// Add inserts an entry for the URL. An existing entry is replaced.
func (m *Manager) Add(url, title string) error {
	return m.provider.AddEntry(Entry{
		URL:     url,
		Title:   title,
		AddedAt: time.Now(),
	})
}

// Remove deletes the entry for the URL; absent URLs are a no-op.
func (m *Manager) Remove(url string) error {
	return m.provider.RemoveEntry(url)
}

// KVFallback implements Provider on the key-value store.
type KVFallback struct {
	store storage.Store
}

// NewKVFallback creates a fallback provider over the given store.
func NewKVFallback(store storage.Store) *KVFallback {
	return &KVFallback{store: store}
}

// Query reads the full entry list from the store, newest first, same
// as the host-backed provider.
func (f *KVFallback) Query() ([]Entry, error) {
	data, ok, err := f.store.Get(storeKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AddedAt.After(entries[j].AddedAt)
	})
	return entries, nil
}

// AddEntry upserts by URL and rewrites the full blob.
func (f *KVFallback) AddEntry(e Entry) error {
	entries, err := f.Query()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].URL == e.URL {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}

	return f.save(entries)
}

// RemoveEntry deletes by URL and rewrites the full blob.
func (f *KVFallback) RemoveEntry(url string) error {
	entries, err := f.Query()
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].URL == url {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}

	return f.save(entries)
}

func (f *KVFallback) save(entries []Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return f.store.Set(storeKey, data)
}
