package constants

// Glyphs drawn by the pickers. They are plain Unicode, present in most UI
// fonts, so no icon font is required.
const (
	ScrollUp   = "▲" // more rows above
	ScrollDown = "▼" // more rows below
	Selected   = "▶" // marks the committed row
	NoColor    = "∅" // "None" row in the terminal, rows without a swatch in SDL
)
