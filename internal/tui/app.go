package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/tabdash/tabdash/internal/bookmarks"
	"github.com/tabdash/tabdash/internal/browser"
	"github.com/tabdash/tabdash/internal/favorites"
	"github.com/tabdash/tabdash/internal/flatten"
	"github.com/tabdash/tabdash/internal/model"
	"github.com/tabdash/tabdash/internal/readinglist"
	"github.com/tabdash/tabdash/internal/search"
	"github.com/tabdash/tabdash/internal/storage"
	"github.com/tabdash/tabdash/internal/tui/layout"
)

// Pane identifies one of the dashboard panes.
type Pane int

const (
	PaneFolders Pane = iota
	PaneGrid
	PaneFavorites
	PaneReading

	paneCount
)

// treeMsg carries the result of a host tree fetch.
type treeMsg struct {
	roots []model.BookmarkNode
	err   error
}

// tickMsg drives the clock.
type tickMsg time.Time

// App is the main bubbletea model for the dashboard. It owns all
// mutable state: the flattened tree, the favorites list and the
// reading-list cache.
type App struct {
	tree     bookmarks.TreeProvider
	favs     *favorites.List
	reading  *readinglist.Manager
	settings storage.Settings
	log      *zap.Logger

	keys   KeyMap
	styles Styles
	cfg    layout.Config

	res     flatten.Result
	entries []readinglist.Entry

	pane      Pane
	cursors   [paneCount]int
	grabbedID string // favorite picked up for reordering

	mode        Mode
	form        FormState
	searchState SearchState
	confirm     ConfirmState

	now       time.Time
	status    string
	statusErr bool

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Tree      bookmarks.TreeProvider
	Favorites *favorites.List
	Reading   *readinglist.Manager
	Settings  storage.Settings
	Log       *zap.Logger
	Keys      *KeyMap        // optional, uses default if nil
	Styles    *Styles        // optional, uses default if nil
	Layout    *layout.Config // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.Layout != nil {
		cfg = *params.Layout
	}

	log := params.Log
	if log == nil {
		log = zap.NewNop()
	}

	app := App{
		tree:        params.Tree,
		favs:        params.Favorites,
		reading:     params.Reading,
		settings:    params.Settings,
		log:         log,
		keys:        keys,
		styles:      styles,
		cfg:         cfg,
		pane:        PaneGrid,
		form:        NewFormState(),
		searchState: NewSearchState(),
		now:         time.Now(),
		width:       80,
		height:      24,
	}
	app.refreshReading()
	return app
}

// WithDimensions returns a copy with fixed window dimensions.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// ActivePane returns the focused pane.
func (a App) ActivePane() Pane {
	return a.pane
}

// Cursor returns the cursor position in the active pane.
func (a App) Cursor() int {
	return a.cursors[a.pane]
}

// GrabbedID returns the favorite currently picked up, "" if none.
func (a App) GrabbedID() string {
	return a.grabbedID
}

// Result returns the current flattened tree.
func (a App) Result() flatten.Result {
	return a.res
}

// Status returns the transient status line.
func (a App) Status() string {
	return a.status
}

// localeTag parses the configured sorting locale, falling back to the
// collation root.
func (a App) localeTag() language.Tag {
	if a.settings.Locale == "" {
		return language.Und
	}
	tag, err := language.Parse(a.settings.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// loadTree fetches the host tree off the event loop.
func (a App) loadTree() tea.Cmd {
	tree := a.tree
	return func() tea.Msg {
		roots, err := tree.GetTree()
		return treeMsg{roots: roots, err: err}
	}
}

// tickCmd schedules the next clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadTree(), tickCmd())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		a.now = time.Time(msg)
		return a, tickCmd()

	case treeMsg:
		if msg.err != nil {
			// Degrade to the empty state; the UI must stay renderable.
			a.log.Warn("bookmark tree fetch failed", zap.Error(msg.err))
			a.res = flatten.Result{}
			a.setError("bookmarks unavailable")
			return a, nil
		}
		a.res = flatten.FlattenCollated(msg.roots, a.localeTag())
		a.clampCursors()
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeNormal:
			return a.handleAction(a.keys.ActionFor(msg))
		case ModeAddBookmark, ModeAddFolder, ModeEdit:
			return a.handleFormKey(msg)
		case ModeConfirmDelete:
			return a.handleConfirmKey(msg)
		case ModeSearch:
			return a.handleSearchKey(msg)
		case ModeHelp:
			a.mode = ModeNormal
			return a, nil
		}
	}

	return a, nil
}

// handleAction dispatches one tagged UI action.
func (a App) handleAction(action Action) (tea.Model, tea.Cmd) {
	a.status = ""
	a.statusErr = false

	switch action {
	case ActionNone:
		return a, nil

	case ActionMoveUp:
		if a.cursors[a.pane] > 0 {
			a.cursors[a.pane]--
		}
		return a, nil

	case ActionMoveDown:
		if a.cursors[a.pane] < a.paneLen(a.pane)-1 {
			a.cursors[a.pane]++
		}
		return a, nil

	case ActionTop:
		a.cursors[a.pane] = 0
		return a, nil

	case ActionBottom:
		if n := a.paneLen(a.pane); n > 0 {
			a.cursors[a.pane] = n - 1
		}
		return a, nil

	case ActionNextPane:
		a.pane = (a.pane + 1) % paneCount
		return a, nil

	case ActionPrevPane:
		a.pane = (a.pane + paneCount - 1) % paneCount
		return a, nil

	case ActionOpen:
		return a.openSelected()

	case ActionToggleFavorite:
		return a.toggleFavorite()

	case ActionGrab:
		return a.grabOrDrop()

	case ActionAddBookmark:
		a.mode = ModeAddBookmark
		a.form.Reset()
		a.form.ParentID = a.currentFolderID()
		a.form.TitleInput.Focus()
		return a, nil

	case ActionAddFolder:
		a.mode = ModeAddFolder
		a.form.Reset()
		a.form.ParentID = a.currentFolderID()
		a.form.TitleInput.Focus()
		return a, nil

	case ActionEdit:
		b, ok := a.selectedBookmark()
		if !ok {
			return a, nil
		}
		a.mode = ModeEdit
		a.form.Reset()
		a.form.EditingID = b.ID
		a.form.TitleInput.SetValue(b.Title)
		a.form.URLInput.SetValue(b.URL)
		a.form.TitleInput.Focus()
		return a, nil

	case ActionDelete:
		return a.deleteSelected()

	case ActionReadLater:
		return a.readLater()

	case ActionSearch:
		a.mode = ModeSearch
		a.searchState.Reset()
		a.searchState.Input.Focus()
		return a, nil

	case ActionYankURL:
		if b, ok := a.selectedBookmark(); ok {
			if err := clipboard.WriteAll(b.URL); err != nil {
				a.setError("clipboard unavailable")
			} else {
				a.setStatus("URL copied")
			}
		}
		return a, nil

	case ActionRefresh:
		return a, a.loadTree()

	case ActionHelp:
		a.mode = ModeHelp
		return a, nil

	case ActionQuit:
		return a, tea.Quit
	}

	return a, nil
}

// paneLen returns the number of rows in a pane.
func (a App) paneLen(p Pane) int {
	switch p {
	case PaneFolders:
		return len(a.res.Folders) + 1 // +1 for the "All Bookmarks" row
	case PaneGrid:
		return len(a.gridBookmarks())
	case PaneFavorites:
		if a.favs == nil {
			return 0
		}
		return a.favs.Len()
	case PaneReading:
		return len(a.entries)
	}
	return 0
}

// gridBookmarks returns the bookmarks shown in the grid pane: all of
// them, or the selected folder's nested set.
func (a App) gridBookmarks() []model.FlatBookmark {
	sel := a.cursors[PaneFolders]
	if sel <= 0 || sel > len(a.res.Folders) {
		return a.res.Bookmarks
	}
	return a.res.Folders[sel-1].Children
}

// currentFolderID returns the folder new nodes land in: the selected
// folder, or the bookmarks bar at the "All Bookmarks" row.
func (a App) currentFolderID() string {
	sel := a.cursors[PaneFolders]
	if sel <= 0 || sel > len(a.res.Folders) {
		return model.RootBarID
	}
	return a.res.Folders[sel-1].ID
}

// selectedBookmark resolves the active pane's selection to a bookmark.
func (a App) selectedBookmark() (model.FlatBookmark, bool) {
	switch a.pane {
	case PaneGrid:
		items := a.gridBookmarks()
		if c := a.cursors[PaneGrid]; c >= 0 && c < len(items) {
			return items[c], true
		}
	case PaneFavorites:
		if a.favs == nil {
			break
		}
		items := a.favs.Items()
		if c := a.cursors[PaneFavorites]; c >= 0 && c < len(items) {
			return items[c], true
		}
	}
	return model.FlatBookmark{}, false
}

// openSelected opens the selection in the browser, or focuses the grid
// when a folder is selected.
func (a App) openSelected() (tea.Model, tea.Cmd) {
	switch a.pane {
	case PaneFolders:
		a.pane = PaneGrid
		a.cursors[PaneGrid] = 0
		return a, nil
	case PaneReading:
		if c := a.cursors[PaneReading]; c >= 0 && c < len(a.entries) {
			browser.Open(a.entries[c].URL)
		}
		return a, nil
	default:
		if b, ok := a.selectedBookmark(); ok {
			browser.Open(b.URL)
		}
		return a, nil
	}
}

// toggleFavorite flips favorite membership for the selection.
func (a App) toggleFavorite() (tea.Model, tea.Cmd) {
	b, ok := a.selectedBookmark()
	if !ok || a.favs == nil {
		return a, nil
	}
	a.favs.Toggle(b.ID, a.res.Bookmark)
	a.clampCursors()
	return a, nil
}

// grabOrDrop implements favorites reordering: grab the selection, then
// drop it on a target to move it there.
func (a App) grabOrDrop() (tea.Model, tea.Cmd) {
	if a.pane != PaneFavorites || a.favs == nil {
		return a, nil
	}
	items := a.favs.Items()
	c := a.cursors[PaneFavorites]
	if c < 0 || c >= len(items) {
		return a, nil
	}
	selected := items[c].ID

	switch a.grabbedID {
	case "":
		a.grabbedID = selected
	case selected:
		a.grabbedID = "" // drop in place
	default:
		a.favs.Reorder(a.grabbedID, selected)
		a.grabbedID = ""
	}
	return a, nil
}

// deleteSelected deletes the selection, after confirmation when
// configured. Favorites and reading entries are local removals.
func (a App) deleteSelected() (tea.Model, tea.Cmd) {
	switch a.pane {
	case PaneFavorites:
		if b, ok := a.selectedBookmark(); ok {
			a.favs.Remove(b.ID)
			a.clampCursors()
		}
		return a, nil

	case PaneReading:
		if c := a.cursors[PaneReading]; c >= 0 && c < len(a.entries) {
			if err := a.reading.Remove(a.entries[c].URL); err != nil {
				a.setError("remove failed: " + err.Error())
			}
			a.refreshReading()
			a.clampCursors()
		}
		return a, nil

	case PaneFolders:
		sel := a.cursors[PaneFolders]
		if sel <= 0 || sel > len(a.res.Folders) {
			return a, nil
		}
		f := a.res.Folders[sel-1]
		if a.settings.ConfirmDelete {
			a.mode = ModeConfirmDelete
			a.confirm = ConfirmState{ID: f.ID, Title: f.Title}
			return a, nil
		}
		return a.removeNode(f.ID)

	default:
		b, ok := a.selectedBookmark()
		if !ok {
			return a, nil
		}
		if a.settings.ConfirmDelete {
			a.mode = ModeConfirmDelete
			a.confirm = ConfirmState{ID: b.ID, Title: b.Title}
			return a, nil
		}
		return a.removeNode(b.ID)
	}
}

// removeNode deletes a node from the host tree and reloads.
func (a App) removeNode(id string) (tea.Model, tea.Cmd) {
	if err := a.tree.Remove(id); err != nil {
		a.setError("delete failed: " + err.Error())
		return a, nil
	}
	a.setStatus("deleted")
	return a, a.loadTree()
}

// readLater adds the selected bookmark to the reading list, or removes
// the selected entry when the reading pane is active.
func (a App) readLater() (tea.Model, tea.Cmd) {
	if a.pane == PaneReading {
		return a.deleteSelected()
	}

	b, ok := a.selectedBookmark()
	if !ok {
		return a, nil
	}
	if err := a.reading.Add(b.URL, b.Title); err != nil {
		a.setError("read later failed: " + err.Error())
		return a, nil
	}
	a.refreshReading()
	a.setStatus("added to reading list")
	return a, nil
}

// handleFormKey routes keys while an add/edit modal is open.
func (a App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = ModeNormal
		return a, nil

	case "tab", "shift+tab", "up", "down":
		if a.mode == ModeAddFolder {
			return a, nil // single field
		}
		if a.form.Focus == 0 {
			a.form.Focus = 1
			a.form.TitleInput.Blur()
			a.form.URLInput.Focus()
		} else {
			a.form.Focus = 0
			a.form.URLInput.Blur()
			a.form.TitleInput.Focus()
		}
		return a, nil

	case "enter":
		return a.submitForm()
	}

	var cmd tea.Cmd
	if a.form.Focus == 0 || a.mode == ModeAddFolder {
		a.form.TitleInput, cmd = a.form.TitleInput.Update(msg)
	} else {
		a.form.URLInput, cmd = a.form.URLInput.Update(msg)
	}
	return a, cmd
}

// submitForm validates and applies the pending form. Validation errors
// stay in the modal; host mutation errors surface in the status line.
func (a App) submitForm() (tea.Model, tea.Cmd) {
	title := a.form.TitleInput.Value()
	url := a.form.URLInput.Value()

	if title == "" {
		a.form.Err = "title must not be empty"
		return a, nil
	}

	var err error
	switch a.mode {
	case ModeAddFolder:
		_, err = a.tree.CreateFolder(a.form.ParentID, title)
	case ModeEdit:
		if url == "" {
			a.form.Err = "url must not be empty"
			return a, nil
		}
		err = a.tree.Update(a.form.EditingID, title, url)
	default: // ModeAddBookmark
		if url == "" {
			a.form.Err = "url must not be empty"
			return a, nil
		}
		_, err = a.tree.Create(a.form.ParentID, title, url)
	}

	a.mode = ModeNormal
	if err != nil {
		a.setError("save failed: " + err.Error())
		return a, nil
	}
	a.setStatus("saved")
	return a, a.loadTree()
}

// handleConfirmKey routes keys while the delete confirmation is open.
func (a App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		a.mode = ModeNormal
		return a.removeNode(a.confirm.ID)
	case "n", "esc", "q":
		a.mode = ModeNormal
		return a, nil
	}
	return a, nil
}

// handleSearchKey routes keys while global search is open.
func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = ModeNormal
		return a, nil

	case "up", "ctrl+k":
		if a.searchState.Cursor > 0 {
			a.searchState.Cursor--
		}
		return a, nil

	case "down", "ctrl+j":
		if a.searchState.Cursor < len(a.searchState.Results)-1 {
			a.searchState.Cursor++
		}
		return a, nil

	case "enter":
		if c := a.searchState.Cursor; c >= 0 && c < len(a.searchState.Results) {
			browser.Open(a.searchState.Results[c].Bookmark.URL)
		}
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.searchState.Input, cmd = a.searchState.Input.Update(msg)
	a.searchState.Results = search.Bookmarks(a.res.Bookmarks, a.searchState.Input.Value())
	a.searchState.Cursor = 0
	return a, cmd
}

// refreshReading reloads the reading-list cache.
func (a *App) refreshReading() {
	if a.reading == nil {
		a.entries = []readinglist.Entry{}
		return
	}
	a.entries = a.reading.Entries()
}

// clampCursors keeps every cursor inside its pane after list changes.
func (a *App) clampCursors() {
	for p := Pane(0); p < paneCount; p++ {
		if n := a.paneLen(p); a.cursors[p] >= n {
			if n == 0 {
				a.cursors[p] = 0
			} else {
				a.cursors[p] = n - 1
			}
		}
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
