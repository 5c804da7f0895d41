package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the dashboard.
type KeyMap struct {
	Up             key.Binding
	Down           key.Binding
	Top            key.Binding
	Bottom         key.Binding
	NextPane       key.Binding
	PrevPane       key.Binding
	Open           key.Binding
	ToggleFavorite key.Binding
	Grab           key.Binding
	AddBookmark    key.Binding
	AddFolder      key.Binding
	Edit           key.Binding
	Delete         key.Binding
	ReadLater      key.Binding
	Search         key.Binding
	YankURL        key.Binding
	Refresh        key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous pane"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle favorite"),
		),
		Grab: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "grab/drop favorite"),
		),
		AddBookmark: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add bookmark"),
		),
		AddFolder: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "add folder"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		ReadLater: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "read later"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		YankURL: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "yank URL"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload tree"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ActionFor translates a key press into its tagged action.
func (k KeyMap) ActionFor(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Up):
		return ActionMoveUp
	case key.Matches(msg, k.Down):
		return ActionMoveDown
	case key.Matches(msg, k.Top):
		return ActionTop
	case key.Matches(msg, k.Bottom):
		return ActionBottom
	case key.Matches(msg, k.NextPane):
		return ActionNextPane
	case key.Matches(msg, k.PrevPane):
		return ActionPrevPane
	case key.Matches(msg, k.Open):
		return ActionOpen
	case key.Matches(msg, k.ToggleFavorite):
		return ActionToggleFavorite
	case key.Matches(msg, k.Grab):
		return ActionGrab
	case key.Matches(msg, k.AddBookmark):
		return ActionAddBookmark
	case key.Matches(msg, k.AddFolder):
		return ActionAddFolder
	case key.Matches(msg, k.Edit):
		return ActionEdit
	case key.Matches(msg, k.Delete):
		return ActionDelete
	case key.Matches(msg, k.ReadLater):
		return ActionReadLater
	case key.Matches(msg, k.Search):
		return ActionSearch
	case key.Matches(msg, k.YankURL):
		return ActionYankURL
	case key.Matches(msg, k.Refresh):
		return ActionRefresh
	case key.Matches(msg, k.Help):
		return ActionHelp
	case key.Matches(msg, k.Quit):
		return ActionQuit
	}
	return ActionNone
}
