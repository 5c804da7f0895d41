// Package bookmarks wraps the host bookmark store. The store owns the
// tree; callers re-flatten after every mutation to observe effects.
package bookmarks

import (
	"errors"

	"github.com/tabdash/tabdash/internal/model"
)

var (
	ErrNotFound  = errors.New("bookmark node not found")
	ErrNotFolder = errors.New("target is not a folder")
	ErrReserved  = errors.New("reserved root cannot be modified")
)

// TreeProvider is the host bookmark store. GetTree returns the full
// forest of root containers; mutations return errors to the caller so
// the UI can report them, and provide no incremental update contract.
type TreeProvider interface {
	GetTree() ([]model.BookmarkNode, error)
	Create(parentID, title, url string) (model.BookmarkNode, error)
	CreateFolder(parentID, title string) (model.BookmarkNode, error)
	Update(id, title, url string) error
	Move(id, newParentID string) error
	Remove(id string) error
}
