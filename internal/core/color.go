package core

// Color is a foreground color for a screen cell.
// The platform layer maps it to a terminal style.
type Color uint8

// Colors used by the runner.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorGray
	ColorDarkGray
	ColorWhite
	ColorYellow
	ColorRed
	ColorGreen
)
