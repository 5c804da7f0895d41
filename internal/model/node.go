package model

// Reserved root container IDs used by the host bookmark file.
// They are traversed but never surfaced as user folders.
const (
	RootBarID    = "1" // bookmarks bar
	RootOtherID  = "2" // other bookmarks
	RootMobileID = "3" // mobile bookmarks
)

// BookmarkNode is a node in the host bookmark tree. A node is a folder
// iff Children is non-nil (an empty folder has Children == []BookmarkNode{}),
// otherwise it is a leaf bookmark and URL must be set.
type BookmarkNode struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	URL      string         `json:"url,omitempty"`
	ParentID string         `json:"parentId,omitempty"`
	Children []BookmarkNode `json:"children,omitempty"`
}

// IsFolder reports whether the node is a folder.
func (n *BookmarkNode) IsFolder() bool {
	return n.Children != nil
}

// IsReservedRoot reports whether id names one of the three host root containers.
func IsReservedRoot(id string) bool {
	return id == RootBarID || id == RootOtherID || id == RootMobileID
}

// NewBookmarkNode creates a leaf bookmark node with a generated ID.
func NewBookmarkNode(title, url, parentID string) BookmarkNode {
	return BookmarkNode{
		ID:       generateUUID(),
		Title:    title,
		URL:      url,
		ParentID: parentID,
	}
}

// NewFolderNode creates an empty folder node with a generated ID.
func NewFolderNode(title, parentID string) BookmarkNode {
	return BookmarkNode{
		ID:       generateUUID(),
		Title:    title,
		ParentID: parentID,
		Children: []BookmarkNode{},
	}
}
