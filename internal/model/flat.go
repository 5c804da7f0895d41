package model

// FlatBookmark is a leaf bookmark lifted out of the tree.
type FlatBookmark struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	ParentID string `json:"parentId,omitempty"`
}

// FlatFolder is a folder lifted out of the tree. Children holds every
// bookmark nested at any depth below the folder, in tree pre-order.
type FlatFolder struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	ParentID string         `json:"parentId,omitempty"`
	Children []FlatBookmark `json:"children"`
}
