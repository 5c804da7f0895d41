package layout

// Config holds layout-related constants for the dashboard.
type Config struct {
	Pane  PaneConfig
	Modal ModalConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: header (2) + pane borders (2) + status bar (2).
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// TextConfig holds text rendering configuration.
type TextConfig struct {
	// Ellipsis marks truncated text.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() Config {
	return Config{
		Pane: PaneConfig{
			HeightReduction: 6,
			MinHeight:       3,
			ContentPadding:  4,
		},
		Modal: ModalConfig{
			WidthPercent: 60,
			MinWidth:     30,
			MaxWidth:     80,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
