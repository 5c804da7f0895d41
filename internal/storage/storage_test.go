package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tabdash/tabdash/internal/storage"
)

func TestJSONStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "store.json")

	s := storage.NewJSONStore(path)
	if err := s.Set("favorites", []byte(`[{"id":"b1"}]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("store file was not created")
	}

	value, ok, err := s.Get("favorites")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(value) != `[{"id":"b1"}]` {
		t.Errorf("value = %s", value)
	}
}

func TestJSONStore_MissingKey(t *testing.T) {
	tmpDir := t.TempDir()
	s := storage.NewJSONStore(filepath.Join(tmpDir, "store.json"))

	_, ok, err := s.Get("absent")
	if err != nil {
		t.Fatalf("expected no error for missing key, got: %v", err)
	}
	if ok {
		t.Error("expected miss for absent key")
	}
}

func TestJSONStore_OverwritesKey(t *testing.T) {
	tmpDir := t.TempDir()
	s := storage.NewJSONStore(filepath.Join(tmpDir, "store.json"))

	if err := s.Set("k", []byte(`"v1"`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", []byte(`"v2"`)); err != nil {
		t.Fatal(err)
	}

	value, ok, _ := s.Get("k")
	if !ok || string(value) != `"v2"` {
		t.Errorf("value = %s, ok = %v", value, ok)
	}
}

func TestJSONStore_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "store.json")

	s := storage.NewJSONStore(path)
	if err := s.Set("k", []byte(`1`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tabdash.db")

	s, err := storage.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer s.Close()

	if err := s.Set("favorites", []byte(`[]`)); err != nil {
		t.Fatalf("failed to set: %v", err)
	}

	value, ok, err := s.Get("favorites")
	if err != nil {
		t.Fatalf("failed to get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(value) != `[]` {
		t.Errorf("value = %s", value)
	}

	// Upsert replaces
	if err := s.Set("favorites", []byte(`[1]`)); err != nil {
		t.Fatal(err)
	}
	value, _, _ = s.Get("favorites")
	if string(value) != `[1]` {
		t.Errorf("value after upsert = %s", value)
	}
}

func TestSQLiteStore_MissingKey(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := storage.NewSQLiteStore(filepath.Join(tmpDir, "tabdash.db"))
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	defer s.Close()

	_, ok, err := s.Get("absent")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if ok {
		t.Error("expected miss for absent key")
	}
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tabdash.db")

	s, err := storage.NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", []byte(`"v"`)); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := storage.NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer s2.Close()

	value, ok, _ := s2.Get("k")
	if !ok || string(value) != `"v"` {
		t.Errorf("value = %s, ok = %v", value, ok)
	}
}

func TestSettings_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	s := storage.NewJSONStore(filepath.Join(tmpDir, "store.json"))

	settings, err := storage.LoadSettings(s)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	defaults := storage.DefaultSettings()
	if settings != defaults {
		t.Errorf("settings = %+v, want defaults %+v", settings, defaults)
	}
}

func TestSettings_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	s := storage.NewJSONStore(filepath.Join(tmpDir, "store.json"))

	want := storage.Settings{
		TimeFormat:    "12h",
		Locale:        "de",
		ShowURLs:      false,
		ConfirmDelete: false,
	}
	if err := storage.SaveSettings(s, want); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := storage.LoadSettings(s)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestSettings_InvalidTimeFormatFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	s := storage.NewJSONStore(filepath.Join(tmpDir, "store.json"))

	if err := s.Set("settings", []byte(`{"timeFormat":"martian"}`)); err != nil {
		t.Fatal(err)
	}

	settings, err := storage.LoadSettings(s)
	if err != nil {
		t.Fatal(err)
	}
	if settings.TimeFormat != "24h" {
		t.Errorf("timeFormat = %q, want 24h", settings.TimeFormat)
	}
}
