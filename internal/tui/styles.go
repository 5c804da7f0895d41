package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the dashboard.
type Styles struct {
	Header       lipgloss.Style
	Clock        lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	PaneTitle    lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	ItemGrabbed  lipgloss.Style
	Folder       lipgloss.Style
	URL          lipgloss.Style
	Favorite     lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
}

// Palette colors, grayscale with a single desaturated teal accent.
// Exported so the quick-search picker renders with the same palette.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	ColorSubtle  = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}
	ColorWarn    = lipgloss.AdaptiveColor{Light: "#9A5050", Dark: "#B07070"}
)

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	primary := ColorPrimary
	subtle := ColorSubtle
	accent := ColorAccent
	border := ColorBorder
	warn := ColorWarn

	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			PaddingLeft(1),

		Clock: lipgloss.NewStyle().
			Foreground(subtle),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Item: lipgloss.NewStyle().
			Foreground(primary),

		ItemSelected: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#101010"}),

		ItemGrabbed: lipgloss.NewStyle().
			Foreground(warn).
			Bold(true),

		Folder: lipgloss.NewStyle().
			Foreground(accent),

		URL: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		Favorite: lipgloss.NewStyle().
			Foreground(accent),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		Status: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(1),

		StatusError: lipgloss.NewStyle().
			Foreground(warn).
			PaddingLeft(1),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),

		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),
	}
}
