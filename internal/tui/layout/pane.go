package layout

// ModalWidth computes responsive modal width from the terminal width,
// clamped between MinWidth and MaxWidth.
func ModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100

	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		return 1
	}

	return width
}

// PaneHeight computes the content height of a pane for the given
// terminal height.
func PaneHeight(terminalHeight int, cfg PaneConfig) int {
	h := terminalHeight - cfg.HeightReduction
	if h < cfg.MinHeight {
		return cfg.MinHeight
	}
	return h
}

// VisibleWindow computes the start and end indices for a scrollable
// list. Returns (start, end) where items[start:end] should be displayed.
func VisibleWindow(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
