package favorites_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/tabdash/tabdash/internal/favorites"
	"github.com/tabdash/tabdash/internal/model"
	"github.com/tabdash/tabdash/internal/storage"
)

func testStore(t *testing.T) storage.Store {
	t.Helper()
	return storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
}

func bm(id string) model.FlatBookmark {
	return model.FlatBookmark{ID: id, Title: "Bookmark " + id, URL: "https://" + id + ".example"}
}

// resolverFor builds a Resolver over a fixed bookmark set.
func resolverFor(bookmarks ...model.FlatBookmark) favorites.Resolver {
	return func(id string) (model.FlatBookmark, bool) {
		for _, b := range bookmarks {
			if b.ID == id {
				return b, true
			}
		}
		return model.FlatBookmark{}, false
	}
}

func ids(items []model.FlatBookmark) []string {
	out := make([]string, len(items))
	for i, b := range items {
		out[i] = b.ID
	}
	return out
}

func assertOrder(t *testing.T, l *favorites.List, want ...string) {
	t.Helper()
	got := ids(l.Items())
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestToggle_AddsAndRemoves(t *testing.T) {
	l := favorites.Load(testStore(t), nil)
	resolve := resolverFor(bm("a"), bm("b"))

	l.Toggle("a", resolve)
	if !l.Contains("a") {
		t.Fatal("expected a to be favorited")
	}

	l.Toggle("a", resolve)
	if l.Contains("a") {
		t.Fatal("expected a to be removed")
	}
	if l.Len() != 0 {
		t.Errorf("len = %d, want 0", l.Len())
	}
}

func TestToggle_UnknownIDIsNoop(t *testing.T) {
	l := favorites.Load(testStore(t), nil)
	resolve := resolverFor(bm("a"))

	l.Toggle("missing-id", resolve)
	if l.Len() != 0 {
		t.Errorf("len = %d, want 0", l.Len())
	}
}

func TestToggle_ReAddAppendsAtEnd(t *testing.T) {
	l := favorites.Load(testStore(t), nil)
	resolve := resolverFor(bm("a"), bm("b"), bm("c"))

	l.Toggle("a", resolve)
	l.Toggle("b", resolve)
	l.Toggle("c", resolve)
	assertOrder(t, l, "a", "b", "c")

	// Toggle off then back on: a loses its original position.
	l.Toggle("a", resolve)
	l.Toggle("a", resolve)
	assertOrder(t, l, "b", "c", "a")
}

func TestAdd_Idempotent(t *testing.T) {
	l := favorites.Load(testStore(t), nil)

	l.Add(bm("a"))
	l.Add(bm("a"))
	if l.Len() != 1 {
		t.Errorf("len = %d, want 1", l.Len())
	}
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	l := favorites.Load(testStore(t), nil)
	l.Add(bm("a"))

	l.Remove("b")
	assertOrder(t, l, "a")

	l.Remove("a")
	if l.Len() != 0 {
		t.Errorf("len = %d, want 0", l.Len())
	}
}

func TestReorder_DragForwardLandsAfterTarget(t *testing.T) {
	l := favorites.Load(testStore(t), nil)
	l.Add(bm("x"))
	l.Add(bm("y"))
	l.Add(bm("z"))

	l.Reorder("x", "z")
	assertOrder(t, l, "y", "z", "x")
}

func TestReorder_DragBackwardLandsBeforeTarget(t *testing.T) {
	l := favorites.Load(testStore(t), nil)
	l.Add(bm("x"))
	l.Add(bm("y"))
	l.Add(bm("z"))

	l.Reorder("z", "x")
	assertOrder(t, l, "z", "x", "y")
}

func TestReorder_AdjacentSwap(t *testing.T) {
	l := favorites.Load(testStore(t), nil)
	l.Add(bm("x"))
	l.Add(bm("y"))

	l.Reorder("x", "y")
	assertOrder(t, l, "y", "x")

	l.Reorder("x", "y")
	assertOrder(t, l, "x", "y")
}

func TestReorder_NoopCases(t *testing.T) {
	l := favorites.Load(testStore(t), nil)
	l.Add(bm("x"))
	l.Add(bm("y"))
	l.Add(bm("z"))

	l.Reorder("x", "x")
	assertOrder(t, l, "x", "y", "z")

	l.Reorder("x", "missing")
	assertOrder(t, l, "x", "y", "z")

	l.Reorder("missing", "x")
	assertOrder(t, l, "x", "y", "z")
}

func TestLoad_RoundTripsThroughStore(t *testing.T) {
	store := testStore(t)

	l := favorites.Load(store, nil)
	l.Add(bm("a"))
	l.Add(bm("b"))
	l.Reorder("b", "a")

	// Fresh list from the same store sees the persisted order.
	l2 := favorites.Load(store, nil)
	assertOrder(t, l2, "b", "a")
}

func TestLoad_CorruptBlobStartsEmpty(t *testing.T) {
	store := testStore(t)
	if err := store.Set("favorites", []byte(`{not json`)); err != nil {
		t.Fatal(err)
	}

	l := favorites.Load(store, nil)
	if l.Len() != 0 {
		t.Errorf("len = %d, want 0", l.Len())
	}
}

// brokenStore fails every operation, standing in for a dead host store.
type brokenStore struct{}

func (brokenStore) Get(string) ([]byte, bool, error) { return nil, false, errors.New("store down") }
func (brokenStore) Set(string, []byte) error         { return errors.New("store down") }
func (brokenStore) Close() error                     { return nil }

func TestMutations_SurviveStoreFailure(t *testing.T) {
	// Persistence is best-effort: the in-memory list keeps working when
	// every write fails.
	l := favorites.Load(brokenStore{}, nil)

	l.Add(bm("a"))
	l.Add(bm("b"))
	l.Reorder("b", "a")
	assertOrder(t, l, "b", "a")
}
