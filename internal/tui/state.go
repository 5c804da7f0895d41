package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/tabdash/tabdash/internal/search"
)

// Mode selects which input layer owns key presses.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddBookmark
	ModeAddFolder
	ModeEdit
	ModeConfirmDelete
	ModeSearch
	ModeHelp
)

// FormState holds state for the add/edit bookmark and add folder modals.
type FormState struct {
	TitleInput textinput.Model
	URLInput   textinput.Model
	Focus      int    // 0 = title, 1 = url
	EditingID  string // non-empty while editing an existing bookmark
	ParentID   string // target folder for new nodes
	Err        string // validation error shown in the modal
}

// NewFormState creates a FormState with initialized inputs.
func NewFormState() FormState {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 120
	title.Width = 40

	url := textinput.New()
	url.Placeholder = "https://..."
	url.CharLimit = 500
	url.Width = 40

	return FormState{TitleInput: title, URLInput: url}
}

// Reset clears the form for a new session.
func (f *FormState) Reset() {
	f.TitleInput.Reset()
	f.URLInput.Reset()
	f.Focus = 0
	f.EditingID = ""
	f.ParentID = ""
	f.Err = ""
}

// SearchState holds state for global fuzzy search.
type SearchState struct {
	Input   textinput.Model
	Results []search.Result
	Cursor  int
}

// NewSearchState creates a SearchState with an initialized input.
func NewSearchState() SearchState {
	input := textinput.New()
	input.Placeholder = "Search bookmarks..."
	input.CharLimit = 120
	input.Width = 40
	return SearchState{Input: input}
}

// Reset clears the search state for a new session.
func (s *SearchState) Reset() {
	s.Input.Reset()
	s.Results = nil
	s.Cursor = 0
}

// ConfirmState holds the pending delete target.
type ConfirmState struct {
	ID    string
	Title string
}
