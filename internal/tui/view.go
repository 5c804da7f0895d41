package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabdash/tabdash/internal/tui/layout"
)

// paneTitles indexed by Pane.
var paneTitles = [paneCount]string{"Folders", "Bookmarks", "Favorites", "Reading List"}

// renderView draws the whole dashboard.
func (a App) renderView() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	switch a.mode {
	case ModeAddBookmark, ModeAddFolder, ModeEdit:
		b.WriteString(a.renderFormModal())
	case ModeConfirmDelete:
		b.WriteString(a.renderConfirmModal())
	case ModeSearch:
		b.WriteString(a.renderSearch())
	case ModeHelp:
		b.WriteString(a.renderHelp())
	default:
		b.WriteString(a.renderPanes())
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())

	return b.String()
}

// renderHeader draws the title line with the clock on the right.
func (a App) renderHeader() string {
	title := a.styles.Header.Render("tabdash")

	clockFormat := "15:04:05"
	if a.settings.TimeFormat == "12h" {
		clockFormat = "3:04:05 PM"
	}
	clock := a.styles.Clock.Render(a.now.Format(clockFormat))

	gap := a.width - lipgloss.Width(title) - lipgloss.Width(clock) - 1
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + clock
}

// renderPanes draws the four dashboard panes side by side.
func (a App) renderPanes() string {
	paneWidth := a.width/int(paneCount) - 2
	if paneWidth < 12 {
		paneWidth = 12
	}
	paneHeight := layout.PaneHeight(a.height, a.cfg.Pane)

	rendered := make([]string, 0, paneCount)
	for p := Pane(0); p < paneCount; p++ {
		rendered = append(rendered, a.renderPane(p, paneWidth, paneHeight))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderPane draws one pane with its title and visible item window.
func (a App) renderPane(p Pane, width, height int) string {
	lines := a.paneLines(p, width-a.cfg.Pane.ContentPadding)

	title := a.styles.PaneTitle.Render(paneTitles[p])
	maxVisible := height - 1
	if maxVisible < 1 {
		maxVisible = 1
	}

	start, end := layout.VisibleWindow(maxVisible, a.cursors[p], len(lines))
	body := lines[start:end]
	if len(body) == 0 {
		body = []string{a.styles.Empty.Render("empty")}
	}

	content := title + "\n" + strings.Join(body, "\n")

	style := a.styles.Pane
	if p == a.pane {
		style = a.styles.PaneActive
	}
	return style.Width(width).Height(height).Render(content)
}

// paneLines renders every row of a pane.
func (a App) paneLines(p Pane, width int) []string {
	selected := a.cursors[p]
	active := p == a.pane

	row := func(i int, text string) string {
		text, _ = layout.TruncateText(text, width, a.cfg.Text)
		if active && i == selected {
			return a.styles.ItemSelected.Render(text)
		}
		return a.styles.Item.Render(text)
	}

	switch p {
	case PaneFolders:
		lines := []string{row(0, fmt.Sprintf("All Bookmarks (%d)", len(a.res.Bookmarks)))}
		for i, f := range a.res.Folders {
			lines = append(lines, row(i+1, fmt.Sprintf("%s (%d)", f.Title, len(f.Children))))
		}
		return lines

	case PaneGrid:
		lines := []string{}
		for i, b := range a.gridBookmarks() {
			text := b.Title
			if a.settings.ShowURLs {
				text += "  " + b.URL
			}
			marker := "  "
			if a.favs != nil && a.favs.Contains(b.ID) {
				marker = a.styles.Favorite.Render("*") + " "
			}
			lines = append(lines, marker+row(i, text))
		}
		return lines

	case PaneFavorites:
		lines := []string{}
		if a.favs == nil {
			return lines
		}
		for i, b := range a.favs.Items() {
			text := b.Title
			if b.ID == a.grabbedID {
				lines = append(lines, a.styles.ItemGrabbed.Render("^ ")+row(i, text))
				continue
			}
			lines = append(lines, "  "+row(i, text))
		}
		return lines

	case PaneReading:
		lines := []string{}
		for i, e := range a.entries {
			lines = append(lines, row(i, e.Title+"  "+a.styles.URL.Render(e.URL)))
		}
		return lines
	}
	return nil
}

// renderFormModal draws the add/edit modal.
func (a App) renderFormModal() string {
	width := layout.ModalWidth(a.width, a.cfg.Modal)

	title := "Add Bookmark"
	switch a.mode {
	case ModeAddFolder:
		title = "Add Folder"
	case ModeEdit:
		title = "Edit Bookmark"
	}

	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(a.form.TitleInput.View())
	if a.mode != ModeAddFolder {
		b.WriteString("\n")
		b.WriteString(a.form.URLInput.View())
	}
	if a.form.Err != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.StatusError.Render(a.form.Err))
	}
	b.WriteString("\n\n")
	b.WriteString(a.styles.HintDesc.Render("enter save - tab switch field - esc cancel"))

	modal := a.styles.Modal.Width(width).Render(b.String())
	return lipgloss.Place(a.width, layout.PaneHeight(a.height, a.cfg.Pane)+2, lipgloss.Center, lipgloss.Center, modal)
}

// renderConfirmModal draws the delete confirmation.
func (a App) renderConfirmModal() string {
	width := layout.ModalWidth(a.width, a.cfg.Modal)

	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Delete?"))
	b.WriteString("\n")
	name, _ := layout.TruncateText(a.confirm.Title, width-6, a.cfg.Text)
	b.WriteString(name)
	b.WriteString("\n\n")
	b.WriteString(a.styles.HintDesc.Render("y delete - n cancel"))

	modal := a.styles.Modal.Width(width).Render(b.String())
	return lipgloss.Place(a.width, layout.PaneHeight(a.height, a.cfg.Pane)+2, lipgloss.Center, lipgloss.Center, modal)
}

// renderSearch draws the global search overlay.
func (a App) renderSearch() string {
	var b strings.Builder
	b.WriteString(a.searchState.Input.View())
	b.WriteString("\n\n")

	if len(a.searchState.Results) == 0 {
		b.WriteString(a.styles.Empty.Render("no matches"))
	}

	maxVisible := layout.PaneHeight(a.height, a.cfg.Pane) - 2
	if maxVisible < 1 {
		maxVisible = 1
	}
	start, end := layout.VisibleWindow(maxVisible, a.searchState.Cursor, len(a.searchState.Results))

	for i := start; i < end; i++ {
		r := a.searchState.Results[i]
		line, _ := layout.TruncateText(r.Bookmark.Title+"  "+r.Bookmark.URL, a.width-4, a.cfg.Text)
		if i == a.searchState.Cursor {
			b.WriteString(a.styles.ItemSelected.Render(line))
		} else {
			b.WriteString(a.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderHelp draws the key binding overlay.
func (a App) renderHelp() string {
	hints := [][2]string{
		{"j/k", "move"},
		{"tab/shift+tab", "switch pane"},
		{"enter", "open / enter folder"},
		{"f", "toggle favorite"},
		{"m", "grab/drop favorite (reorder)"},
		{"a/A", "add bookmark/folder"},
		{"e", "edit"},
		{"d", "delete"},
		{"r", "read later"},
		{"/", "search"},
		{"Y", "yank URL"},
		{"R", "reload tree"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(a.styles.ModalTitle.Render("Keys"))
	b.WriteString("\n")
	for _, h := range hints {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			a.styles.HintKey.Render(fmt.Sprintf("%-14s", h[0])),
			a.styles.HintDesc.Render(h[1])))
	}
	return b.String()
}

// renderStatusBar draws the status line, or default hints when idle.
func (a App) renderStatusBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.StatusError.Render(a.status)
		}
		return a.styles.Status.Render(a.status)
	}
	return a.styles.Status.Render("? help - / search - q quit")
}
