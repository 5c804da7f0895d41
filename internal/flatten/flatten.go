// Package flatten converts the host bookmark tree into the flat lists
// the dashboard renders: one list of every bookmark and one list of
// user folders, each folder carrying all of its nested bookmarks.
package flatten

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tabdash/tabdash/internal/model"
)

// Result holds the flattened view of a bookmark forest.
type Result struct {
	Bookmarks []model.FlatBookmark
	Folders   []model.FlatFolder

	byID map[string]int // index into Bookmarks
}

// Flatten walks the forest in pre-order and builds the flat bookmark and
// folder lists. Reserved root containers are traversed but never emitted
// as folders; folders with an empty title are skipped the same way. The
// folder list is sorted by title with locale-aware collation, stable for
// equal titles.
func Flatten(roots []model.BookmarkNode) Result {
	return FlattenCollated(roots, language.Und)
}

// FlattenCollated is Flatten with an explicit collation language.
func FlattenCollated(roots []model.BookmarkNode, tag language.Tag) Result {
	res := Result{
		Bookmarks: []model.FlatBookmark{},
		Folders:   []model.FlatFolder{},
	}

	for i := range roots {
		walk(&roots[i], &res)
	}

	c := collate.New(tag)
	sort.SliceStable(res.Folders, func(i, j int) bool {
		return c.CompareString(res.Folders[i].Title, res.Folders[j].Title) < 0
	})

	res.byID = make(map[string]int, len(res.Bookmarks))
	for i, b := range res.Bookmarks {
		res.byID[b.ID] = i
	}

	return res
}

// walk visits one node, appending bookmarks and emitted folders.
func walk(n *model.BookmarkNode, res *Result) {
	if !n.IsFolder() {
		if n.URL == "" {
			return
		}
		res.Bookmarks = append(res.Bookmarks, model.FlatBookmark{
			ID:       n.ID,
			Title:    n.Title,
			URL:      n.URL,
			ParentID: n.ParentID,
		})
		return
	}

	if n.Title != "" && !model.IsReservedRoot(n.ID) {
		res.Folders = append(res.Folders, model.FlatFolder{
			ID:       n.ID,
			Title:    n.Title,
			ParentID: n.ParentID,
			Children: collectBookmarks(n),
		})
	}

	for i := range n.Children {
		walk(&n.Children[i], res)
	}
}

// collectBookmarks gathers every leaf bookmark below n, at any depth,
// in pre-order.
func collectBookmarks(n *model.BookmarkNode) []model.FlatBookmark {
	out := []model.FlatBookmark{}
	for i := range n.Children {
		c := &n.Children[i]
		if c.IsFolder() {
			out = append(out, collectBookmarks(c)...)
			continue
		}
		if c.URL == "" {
			continue
		}
		out = append(out, model.FlatBookmark{
			ID:       c.ID,
			Title:    c.Title,
			URL:      c.URL,
			ParentID: c.ParentID,
		})
	}
	return out
}

// Bookmark looks up a flattened bookmark by ID.
func (r *Result) Bookmark(id string) (model.FlatBookmark, bool) {
	if r.byID == nil {
		for _, b := range r.Bookmarks {
			if b.ID == id {
				return b, true
			}
		}
		return model.FlatBookmark{}, false
	}
	i, ok := r.byID[id]
	if !ok {
		return model.FlatBookmark{}, false
	}
	return r.Bookmarks[i], true
}

// Folder looks up an emitted folder by ID.
func (r *Result) Folder(id string) (model.FlatFolder, bool) {
	for _, f := range r.Folders {
		if f.ID == id {
			return f, true
		}
	}
	return model.FlatFolder{}, false
}
