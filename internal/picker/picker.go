package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tabdash/tabdash/internal/model"
	"github.com/tabdash/tabdash/internal/search"
	"github.com/tabdash/tabdash/internal/tui"
)

// Styles come from the dashboard palette so both UIs stay in step.
var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(tui.ColorAccent).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(tui.ColorPrimary)

	urlStyle = lipgloss.NewStyle().
			Foreground(tui.ColorSubtle).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(tui.ColorAccent).
			Bold(true).
			MarginBottom(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(tui.ColorSubtle)
)

// Picker is a minimal TUI for choosing one bookmark out of a set of
// search results, used by the quick-search subcommand.
type Picker struct {
	results   []search.Result
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker over the given search results.
func New(results []search.Result, query string) Picker {
	return Picker{
		results: results,
		query:   query,
		cursor:  0,
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			p.selected = true
			return p, tea.Quit

		case tea.KeyDown:
			if p.cursor < len(p.results)-1 {
				p.cursor++
			}
			return p, nil

		case tea.KeyUp:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}

		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				if p.cursor < len(p.results)-1 {
					p.cursor++
				}
				return p, nil
			case "k":
				if p.cursor > 0 {
					p.cursor--
				}
				return p, nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.results))))
	b.WriteString("\n\n")

	for i, result := range p.results {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		title := style.Render(result.Bookmark.Title)
		url := urlStyle.Render(result.Bookmark.URL)

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, title))
		b.WriteString(fmt.Sprintf("   %s\n", url))
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// Selected returns the chosen bookmark, or false if cancelled or
// nothing was picked.
func (p Picker) Selected() (model.FlatBookmark, bool) {
	if p.cancelled || !p.selected {
		return model.FlatBookmark{}, false
	}
	if p.cursor < len(p.results) {
		return p.results[p.cursor].Bookmark, true
	}
	return model.FlatBookmark{}, false
}

// Cancelled reports whether the user backed out of the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
