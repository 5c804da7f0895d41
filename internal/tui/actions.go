package tui

// Action is a tagged UI action. One key listener feeds the dispatcher in
// Update, which matches exhaustively on this type.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionTop
	ActionBottom
	ActionNextPane
	ActionPrevPane
	ActionOpen
	ActionToggleFavorite
	ActionGrab
	ActionAddBookmark
	ActionAddFolder
	ActionEdit
	ActionDelete
	ActionReadLater
	ActionSearch
	ActionYankURL
	ActionRefresh
	ActionHelp
	ActionQuit
)
