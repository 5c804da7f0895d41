package bookmarks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tabdash/tabdash/internal/model"
)

// fileNode mirrors the Chrome "Bookmarks" file node layout.
type fileNode struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"` // "url" or "folder"
	URL       string     `json:"url,omitempty"`
	DateAdded string     `json:"date_added,omitempty"`
	Children  []fileNode `json:"children,omitempty"`
}

// fileRoots holds the three fixed root containers.
type fileRoots struct {
	BookmarkBar fileNode `json:"bookmark_bar"`
	Other       fileNode `json:"other"`
	Synced      fileNode `json:"synced"`
}

type bookmarkFile struct {
	Version int       `json:"version"`
	Roots   fileRoots `json:"roots"`
}

// FileTree implements TreeProvider on a Chrome-format bookmarks file.
// Every mutation reads, edits and fully rewrites the file.
type FileTree struct {
	path string
}

// NewFileTree creates a FileTree backed by the given file path.
func NewFileTree(path string) *FileTree {
	return &FileTree{path: path}
}

// Path returns the bookmarks file path.
func (t *FileTree) Path() string {
	return t.path
}

// DefaultFilePath returns the default bookmarks file path:
// ~/.config/tabdash/bookmarks.json
func DefaultFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "tabdash", "bookmarks.json"), nil
}

// GetTree reads the file and returns the forest of the three root
// containers. A missing file behaves like an empty tree.
func (t *FileTree) GetTree() ([]model.BookmarkNode, error) {
	f, err := t.load()
	if err != nil {
		return nil, err
	}

	roots := []model.BookmarkNode{
		toModel(&f.Roots.BookmarkBar, ""),
		toModel(&f.Roots.Other, ""),
		toModel(&f.Roots.Synced, ""),
	}
	return roots, nil
}

// Create adds a leaf bookmark under parentID and rewrites the file.
func (t *FileTree) Create(parentID, title, url string) (model.BookmarkNode, error) {
	if url == "" {
		return model.BookmarkNode{}, errors.New("bookmark url must not be empty")
	}
	return t.createNode(parentID, fileNode{
		Name:      title,
		Type:      "url",
		URL:       url,
		DateAdded: fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// CreateFolder adds an empty folder under parentID and rewrites the file.
func (t *FileTree) CreateFolder(parentID, title string) (model.BookmarkNode, error) {
	if title == "" {
		return model.BookmarkNode{}, errors.New("folder title must not be empty")
	}
	return t.createNode(parentID, fileNode{
		Name:     title,
		Type:     "folder",
		Children: []fileNode{},
	})
}

func (t *FileTree) createNode(parentID string, node fileNode) (model.BookmarkNode, error) {
	f, err := t.load()
	if err != nil {
		return model.BookmarkNode{}, err
	}

	parent := findNode(&f.Roots, parentID)
	if parent == nil {
		return model.BookmarkNode{}, ErrNotFound
	}
	if parent.Type != "folder" {
		return model.BookmarkNode{}, ErrNotFolder
	}

	node.ID = nextID(&f.Roots)
	if parent.Children == nil {
		parent.Children = []fileNode{}
	}
	parent.Children = append(parent.Children, node)

	if err := t.save(f); err != nil {
		return model.BookmarkNode{}, err
	}
	return toModel(&node, parentID), nil
}

// Update changes the title and, for leaves, the URL of a node.
func (t *FileTree) Update(id, title, url string) error {
	if model.IsReservedRoot(id) {
		return ErrReserved
	}

	f, err := t.load()
	if err != nil {
		return err
	}

	node := findNode(&f.Roots, id)
	if node == nil {
		return ErrNotFound
	}

	node.Name = title
	if node.Type == "url" && url != "" {
		node.URL = url
	}

	return t.save(f)
}

// Move detaches a node and re-attaches it at the end of newParentID's
// children. Moving a folder into its own subtree is rejected.
func (t *FileTree) Move(id, newParentID string) error {
	if model.IsReservedRoot(id) {
		return ErrReserved
	}

	f, err := t.load()
	if err != nil {
		return err
	}

	// Reject cycles before detaching.
	if within := findNode(&f.Roots, id); within != nil {
		if findIn(within, newParentID) != nil || id == newParentID {
			return errors.New("cannot move a folder into itself")
		}
	}

	node, ok := detachNode(&f.Roots, id)
	if !ok {
		return ErrNotFound
	}

	parent := findNode(&f.Roots, newParentID)
	if parent == nil {
		return ErrNotFound
	}
	if parent.Type != "folder" {
		return ErrNotFolder
	}

	if parent.Children == nil {
		parent.Children = []fileNode{}
	}
	parent.Children = append(parent.Children, node)

	return t.save(f)
}

// Remove deletes a node (and, for folders, its whole subtree).
func (t *FileTree) Remove(id string) error {
	if model.IsReservedRoot(id) {
		return ErrReserved
	}

	f, err := t.load()
	if err != nil {
		return err
	}

	if _, ok := detachNode(&f.Roots, id); !ok {
		return ErrNotFound
	}

	return t.save(f)
}

// Import grafts a parsed forest under the "other" root.
func (t *FileTree) Import(nodes []model.BookmarkNode) (int, error) {
	f, err := t.load()
	if err != nil {
		return 0, err
	}

	added := 0
	seq := maxID(&f.Roots)
	for i := range nodes {
		fn := fromModel(&nodes[i], &seq, &added)
		f.Roots.Other.Children = append(f.Roots.Other.Children, fn)
	}

	if err := t.save(f); err != nil {
		return 0, err
	}
	return added, nil
}

// load reads the bookmarks file; a missing file yields empty roots.
func (t *FileTree) load() (*bookmarkFile, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyFile(), nil
		}
		return nil, err
	}

	var f bookmarkFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	normalizeRoots(&f.Roots)
	if assignMissingIDs(&f.Roots) {
		// Write the assigned ids back so they stay stable across loads.
		if err := t.save(&f); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// save rewrites the bookmarks file. Creates the directory if needed.
func (t *FileTree) save(f *bookmarkFile) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(t.path, data, 0644)
}

func emptyFile() *bookmarkFile {
	f := &bookmarkFile{Version: 1}
	normalizeRoots(&f.Roots)
	return f
}

// normalizeRoots pins the three fixed container IDs and folder shapes.
func normalizeRoots(r *fileRoots) {
	fix := func(n *fileNode, id, name string) {
		n.ID = id
		n.Type = "folder"
		if n.Name == "" {
			n.Name = name
		}
		if n.Children == nil {
			n.Children = []fileNode{}
		}
	}
	fix(&r.BookmarkBar, model.RootBarID, "Bookmarks Bar")
	fix(&r.Other, model.RootOtherID, "Other Bookmarks")
	fix(&r.Synced, model.RootMobileID, "Mobile Bookmarks")
}

// assignMissingIDs generates local ids for host nodes that came without
// one. Reports whether anything changed.
func assignMissingIDs(r *fileRoots) bool {
	changed := false
	var walk func(n *fileNode)
	walk = func(n *fileNode) {
		if n.ID == "" {
			n.ID = model.GenerateUUID()
			changed = true
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(&r.BookmarkBar)
	walk(&r.Other)
	walk(&r.Synced)
	return changed
}

// toModel converts a file node (and its subtree) to the model shape.
func toModel(n *fileNode, parentID string) model.BookmarkNode {
	out := model.BookmarkNode{
		ID:       n.ID,
		Title:    n.Name,
		ParentID: parentID,
	}
	if n.Type == "folder" {
		out.Children = make([]model.BookmarkNode, 0, len(n.Children))
		for i := range n.Children {
			out.Children = append(out.Children, toModel(&n.Children[i], n.ID))
		}
		return out
	}
	out.URL = n.URL
	return out
}

// fromModel converts a model subtree to file nodes, assigning sequential
// IDs from seq.
func fromModel(n *model.BookmarkNode, seq *int, added *int) fileNode {
	*seq++
	out := fileNode{
		ID:   strconv.Itoa(*seq),
		Name: n.Title,
	}

	if n.IsFolder() {
		out.Type = "folder"
		out.Children = []fileNode{}
		for i := range n.Children {
			out.Children = append(out.Children, fromModel(&n.Children[i], seq, added))
		}
		return out
	}

	out.Type = "url"
	out.URL = n.URL
	out.DateAdded = fmt.Sprintf("%d", time.Now().Unix())
	*added++
	return out
}

// findNode locates a node by ID anywhere in the three roots.
func findNode(r *fileRoots, id string) *fileNode {
	for _, root := range []*fileNode{&r.BookmarkBar, &r.Other, &r.Synced} {
		if n := findIn(root, id); n != nil {
			return n
		}
	}
	return nil
}

func findIn(n *fileNode, id string) *fileNode {
	if n.ID == id {
		return n
	}
	for i := range n.Children {
		if found := findIn(&n.Children[i], id); found != nil {
			return found
		}
	}
	return nil
}

// detachNode removes a node by ID and returns it.
func detachNode(r *fileRoots, id string) (fileNode, bool) {
	for _, root := range []*fileNode{&r.BookmarkBar, &r.Other, &r.Synced} {
		if n, ok := detachIn(root, id); ok {
			return n, true
		}
	}
	return fileNode{}, false
}

func detachIn(parent *fileNode, id string) (fileNode, bool) {
	for i := range parent.Children {
		if parent.Children[i].ID == id {
			n := parent.Children[i]
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return n, true
		}
		if n, ok := detachIn(&parent.Children[i], id); ok {
			return n, true
		}
	}
	return fileNode{}, false
}

// nextID returns one past the highest numeric ID in the file, matching
// the host file's monotonically increasing IDs.
func nextID(r *fileRoots) string {
	return strconv.Itoa(maxID(r) + 1)
}

// maxID returns the highest numeric ID present in the file.
func maxID(r *fileRoots) int {
	max := 3 // reserved roots occupy 1-3
	var scan func(n *fileNode)
	scan = func(n *fileNode) {
		if v, err := strconv.Atoi(n.ID); err == nil && v > max {
			max = v
		}
		for i := range n.Children {
			scan(&n.Children[i])
		}
	}
	scan(&r.BookmarkBar)
	scan(&r.Other)
	scan(&r.Synced)
	return max
}
