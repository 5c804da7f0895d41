package readinglist_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tabdash/tabdash/internal/readinglist"
	"github.com/tabdash/tabdash/internal/storage"
)

func kvManager(t *testing.T) *readinglist.Manager {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	return readinglist.NewManager(nil, store, nil)
}

func TestKVFallback_AddQueryRemove(t *testing.T) {
	m := kvManager(t)

	if err := m.Add("https://a.example", "A"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Add("https://b.example", "B"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.AddedAt.IsZero() {
			t.Errorf("entry %q missing locally assigned timestamp", e.URL)
		}
	}

	if err := m.Remove("https://a.example"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	entries = m.Entries()
	if len(entries) != 1 || entries[0].URL != "https://b.example" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestKVFallback_URLIsIdentity(t *testing.T) {
	m := kvManager(t)

	m.Add("https://a.example", "First title")
	m.Add("https://a.example", "Second title")

	entries := m.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (url is the identity)", len(entries))
	}
	if entries[0].Title != "Second title" {
		t.Errorf("title = %q, want replacement", entries[0].Title)
	}
}

func TestKVFallback_QueryNewestFirst(t *testing.T) {
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	fb := readinglist.NewKVFallback(store)

	// Insert out of timestamp order; Query must return newest first,
	// matching the host-backed provider.
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	inserts := []struct {
		url string
		at  time.Time
	}{
		{"https://old.example", base},
		{"https://new.example", base.Add(2 * time.Hour)},
		{"https://mid.example", base.Add(time.Hour)},
	}
	for _, in := range inserts {
		if err := fb.AddEntry(readinglist.Entry{URL: in.url, Title: in.url, AddedAt: in.at}); err != nil {
			t.Fatalf("AddEntry(%s): %v", in.url, err)
		}
	}

	entries, err := fb.Query()
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	want := []string{"https://new.example", "https://mid.example", "https://old.example"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i].URL != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].URL, want[i])
		}
	}
}

func TestManager_EntriesNewestFirstOnKVFallback(t *testing.T) {
	m := kvManager(t)

	if err := m.Add("https://old.example", "Old"); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := m.Add("https://new.example", "New"); err != nil {
		t.Fatal(err)
	}

	entries := m.Entries()
	if len(entries) != 2 || entries[0].URL != "https://new.example" {
		t.Errorf("entries = %+v, want newest first", entries)
	}
}

func TestKVFallback_RemoveAbsentIsNoop(t *testing.T) {
	m := kvManager(t)
	if err := m.Remove("https://nope.example"); err != nil {
		t.Errorf("Remove absent: %v", err)
	}
}

func TestSQLiteProvider_RoundTrip(t *testing.T) {
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "tabdash.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := readinglist.NewManager(readinglist.NewSQLiteProvider(store.DB()), nil, nil)

	if err := m.Add("https://a.example", "A"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := m.Add("https://b.example", "B"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	if err := m.Remove("https://b.example"); err != nil {
		t.Fatal(err)
	}
	entries = m.Entries()
	if len(entries) != 1 || entries[0].URL != "https://a.example" {
		t.Errorf("entries = %+v", entries)
	}
}

// failingProvider always errors, standing in for a broken host API.
type failingProvider struct{}

func (failingProvider) Query() ([]readinglist.Entry, error) {
	return nil, errors.New("host gone")
}
func (failingProvider) AddEntry(readinglist.Entry) error { return errors.New("host gone") }
func (failingProvider) RemoveEntry(string) error         { return errors.New("host gone") }

func TestManager_QueryFailureDegradesToEmpty(t *testing.T) {
	m := readinglist.NewManager(failingProvider{}, nil, nil)

	entries := m.Entries()
	if entries == nil || len(entries) != 0 {
		t.Errorf("entries = %v, want renderable empty list", entries)
	}
}
