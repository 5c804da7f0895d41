package flatten_test

import (
	"testing"

	"github.com/tabdash/tabdash/internal/flatten"
	"github.com/tabdash/tabdash/internal/model"
)

func bookmark(id, title, url, parentID string) model.BookmarkNode {
	return model.BookmarkNode{ID: id, Title: title, URL: url, ParentID: parentID}
}

func folder(id, title, parentID string, children ...model.BookmarkNode) model.BookmarkNode {
	if children == nil {
		children = []model.BookmarkNode{}
	}
	return model.BookmarkNode{ID: id, Title: title, ParentID: parentID, Children: children}
}

func ids(bookmarks []model.FlatBookmark) []string {
	out := make([]string, len(bookmarks))
	for i, b := range bookmarks {
		out[i] = b.ID
	}
	return out
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestFlatten_BarWithSubfolder(t *testing.T) {
	// Root "Bookmarks Bar" (reserved id "1") containing bookmark A and a
	// sub-folder "Work" containing bookmark B.
	roots := []model.BookmarkNode{
		folder("1", "Bookmarks Bar", "",
			bookmark("a", "A", "https://a.example", "1"),
			folder("w", "Work", "1",
				bookmark("b", "B", "https://b.example", "w"),
			),
		),
	}

	res := flatten.Flatten(roots)

	if !equalIDs(ids(res.Bookmarks), []string{"a", "b"}) {
		t.Errorf("bookmarks = %v, want [a b]", ids(res.Bookmarks))
	}

	if len(res.Folders) != 1 {
		t.Fatalf("expected 1 folder, got %d", len(res.Folders))
	}
	f := res.Folders[0]
	if f.Title != "Work" {
		t.Errorf("folder title = %q, want %q", f.Title, "Work")
	}
	if !equalIDs(ids(f.Children), []string{"b"}) {
		t.Errorf("folder children = %v, want [b]", ids(f.Children))
	}
}

func TestFlatten_ReservedRootsNeverEmitted(t *testing.T) {
	roots := []model.BookmarkNode{
		folder("1", "Bookmarks Bar", "",
			bookmark("a", "A", "https://a.example", "1"),
		),
		folder("2", "Other Bookmarks", "",
			folder("f1", "Reading", "2",
				bookmark("b", "B", "https://b.example", "f1"),
			),
		),
		folder("3", "Mobile Bookmarks", ""),
	}

	res := flatten.Flatten(roots)

	for _, f := range res.Folders {
		if model.IsReservedRoot(f.ID) {
			t.Errorf("reserved root %q emitted as folder", f.ID)
		}
	}
	if len(res.Folders) != 1 || res.Folders[0].ID != "f1" {
		t.Fatalf("expected only folder f1, got %+v", res.Folders)
	}
	// Descendants of reserved roots still contribute.
	if !equalIDs(ids(res.Bookmarks), []string{"a", "b"}) {
		t.Errorf("bookmarks = %v, want [a b]", ids(res.Bookmarks))
	}
}

func TestFlatten_UntitledFolderSkipped(t *testing.T) {
	roots := []model.BookmarkNode{
		folder("1", "Bookmarks Bar", "",
			folder("f1", "", "1",
				bookmark("a", "A", "https://a.example", "f1"),
			),
		),
	}

	res := flatten.Flatten(roots)

	if len(res.Folders) != 0 {
		t.Errorf("untitled folder emitted: %+v", res.Folders)
	}
	// Its bookmarks still flow into the flat list.
	if !equalIDs(ids(res.Bookmarks), []string{"a"}) {
		t.Errorf("bookmarks = %v, want [a]", ids(res.Bookmarks))
	}
}

func TestFlatten_FolderChildrenAreDeepAndPreOrder(t *testing.T) {
	roots := []model.BookmarkNode{
		folder("1", "Bookmarks Bar", "",
			folder("dev", "Dev", "1",
				bookmark("a", "A", "https://a.example", "dev"),
				folder("go", "Go", "dev",
					bookmark("b", "B", "https://b.example", "go"),
					folder("tools", "Tools", "go",
						bookmark("c", "C", "https://c.example", "tools"),
					),
				),
				bookmark("d", "D", "https://d.example", "dev"),
			),
		),
	}

	res := flatten.Flatten(roots)

	dev, ok := res.Folder("dev")
	if !ok {
		t.Fatal("folder dev not emitted")
	}
	// Deep collection interleaved in tree pre-order, not just direct children.
	if !equalIDs(ids(dev.Children), []string{"a", "b", "c", "d"}) {
		t.Errorf("dev children = %v, want [a b c d]", ids(dev.Children))
	}

	goFolder, ok := res.Folder("go")
	if !ok {
		t.Fatal("folder go not emitted")
	}
	if !equalIDs(ids(goFolder.Children), []string{"b", "c"}) {
		t.Errorf("go children = %v, want [b c]", ids(goFolder.Children))
	}
}

func TestFlatten_FoldersSortedByTitle(t *testing.T) {
	roots := []model.BookmarkNode{
		folder("1", "Bookmarks Bar", "",
			folder("f1", "zebra", "1"),
			folder("f2", "Apple", "1"),
			folder("f3", "mango", "1"),
		),
	}

	res := flatten.Flatten(roots)

	got := []string{}
	for _, f := range res.Folders {
		got = append(got, f.Title)
	}
	want := []string{"Apple", "mango", "zebra"}
	if !equalIDs(got, want) {
		t.Errorf("folder order = %v, want %v", got, want)
	}
}

func TestFlatten_SortStableForDuplicateTitles(t *testing.T) {
	roots := []model.BookmarkNode{
		folder("1", "Bookmarks Bar", "",
			folder("f1", "Work", "1"),
			folder("f2", "Archive", "1"),
			folder("f3", "Work", "1"),
		),
	}

	res := flatten.Flatten(roots)

	got := []string{}
	for _, f := range res.Folders {
		got = append(got, f.ID)
	}
	// f1 keeps its place before f3 after the stable sort.
	want := []string{"f2", "f1", "f3"}
	if !equalIDs(got, want) {
		t.Errorf("folder ids = %v, want %v", got, want)
	}
}

func TestFlatten_BookmarkIDsUnique(t *testing.T) {
	roots := []model.BookmarkNode{
		folder("1", "Bookmarks Bar", "",
			bookmark("a", "A", "https://a.example", "1"),
			folder("f1", "Work", "1",
				bookmark("b", "B", "https://b.example", "f1"),
				bookmark("c", "C", "https://c.example", "f1"),
			),
		),
		folder("2", "Other Bookmarks", "",
			bookmark("d", "D", "https://d.example", "2"),
		),
	}

	res := flatten.Flatten(roots)

	seen := map[string]bool{}
	for _, b := range res.Bookmarks {
		if seen[b.ID] {
			t.Errorf("duplicate bookmark id %q", b.ID)
		}
		seen[b.ID] = true
	}
	if len(res.Bookmarks) != 4 {
		t.Errorf("expected 4 bookmarks, got %d", len(res.Bookmarks))
	}
}

func TestFlatten_EmptyForest(t *testing.T) {
	res := flatten.Flatten(nil)
	if len(res.Bookmarks) != 0 || len(res.Folders) != 0 {
		t.Error("expected empty result for empty forest")
	}
	if _, ok := res.Bookmark("missing"); ok {
		t.Error("lookup on empty result must miss")
	}
}

func TestResult_BookmarkLookup(t *testing.T) {
	roots := []model.BookmarkNode{
		folder("1", "Bookmarks Bar", "",
			bookmark("a", "A", "https://a.example", "1"),
		),
	}

	res := flatten.Flatten(roots)

	b, ok := res.Bookmark("a")
	if !ok {
		t.Fatal("expected to find bookmark a")
	}
	if b.URL != "https://a.example" {
		t.Errorf("url = %q", b.URL)
	}
	if _, ok := res.Bookmark("nope"); ok {
		t.Error("unexpected hit for unknown id")
	}
}
