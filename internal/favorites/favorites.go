// Package favorites maintains the user-curated, manually ordered list of
// favorite bookmarks. Order is independent of the host tree; entries are
// snapshots taken at the time of favoriting.
package favorites

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/tabdash/tabdash/internal/model"
	"github.com/tabdash/tabdash/internal/storage"
)

// storeKey is the key the favorites blob lives under in the Store.
const storeKey = "favorites"

// Resolver maps a bookmark ID to its current flattened snapshot.
// Typically flatten.Result.Bookmark.
type Resolver func(id string) (model.FlatBookmark, bool)

// List is the ordered favorites list. Every mutation persists the full
// list; persistence failures are logged, never surfaced to the caller.
type List struct {
	items []model.FlatBookmark
	store storage.Store
	log   *zap.Logger
}

// Load reads the favorites blob from the store. A missing key, read
// failure or corrupt blob all degrade to an empty list.
func Load(store storage.Store, log *zap.Logger) *List {
	if log == nil {
		log = zap.NewNop()
	}
	l := &List{
		items: []model.FlatBookmark{},
		store: store,
		log:   log,
	}

	data, ok, err := store.Get(storeKey)
	if err != nil {
		log.Warn("favorites load failed, starting empty", zap.Error(err))
		return l
	}
	if !ok {
		return l
	}

	var items []model.FlatBookmark
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn("favorites blob corrupt, starting empty", zap.Error(err))
		return l
	}
	if items != nil {
		l.items = items
	}
	return l
}

// Items returns a copy of the list in its current order.
func (l *List) Items() []model.FlatBookmark {
	out := make([]model.FlatBookmark, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of favorites.
func (l *List) Len() int {
	return len(l.items)
}

// Contains reports whether a bookmark with the given ID is favorited.
func (l *List) Contains(id string) bool {
	return l.indexOf(id) >= 0
}

// Toggle removes the bookmark if favorited, otherwise appends a snapshot
// resolved through resolve. An ID unknown to the resolver is a silent
// no-op unless it is already in the list, in which case it is removed.
func (l *List) Toggle(id string, resolve Resolver) {
	if i := l.indexOf(id); i >= 0 {
		l.items = append(l.items[:i], l.items[i+1:]...)
		l.persist()
		return
	}

	b, ok := resolve(id)
	if !ok {
		return
	}
	l.items = append(l.items, b)
	l.persist()
}

// Add appends a snapshot if no favorite has the same ID. Idempotent.
func (l *List) Add(b model.FlatBookmark) {
	if l.indexOf(b.ID) >= 0 {
		return
	}
	l.items = append(l.items, b)
	l.persist()
}

// Remove deletes the entry with the given ID; no-op if absent.
func (l *List) Remove(id string) {
	i := l.indexOf(id)
	if i < 0 {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.persist()
}

// Reorder moves the dragged entry to the target's pre-removal index.
// Dragging forward lands after the target, dragging backward lands
// before it. Missing IDs or dragged == target leave the list unchanged.
func (l *List) Reorder(draggedID, targetID string) {
	if draggedID == targetID {
		return
	}
	dIdx := l.indexOf(draggedID)
	tIdx := l.indexOf(targetID)
	if dIdx < 0 || tIdx < 0 {
		return
	}

	dragged := l.items[dIdx]
	l.items = append(l.items[:dIdx], l.items[dIdx+1:]...)

	// tIdx is the target's index before removal: with the dragged entry
	// gone, inserting there lands after the target when dragging forward
	// and before it when dragging backward.
	l.items = append(l.items, model.FlatBookmark{})
	copy(l.items[tIdx+1:], l.items[tIdx:])
	l.items[tIdx] = dragged

	l.persist()
}

// indexOf returns the position of id in the list, or -1.
func (l *List) indexOf(id string) int {
	for i, b := range l.items {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full list to the store. Best effort: the caller
// never sees the error, it is logged and the in-memory list stays
// authoritative for the session.
func (l *List) persist() {
	data, err := json.Marshal(l.items)
	if err != nil {
		l.log.Error("favorites marshal failed", zap.Error(err))
		return
	}
	if err := l.store.Set(storeKey, data); err != nil {
		l.log.Error("favorites persist failed", zap.Error(err))
	}
}
