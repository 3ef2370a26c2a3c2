package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)

// ansiCodes maps colors to their 256-color palette index.
var ansiCodes = [...]int{
	ColorDefault:      -1,
	ColorRed:          1,
	ColorGreen:        2,
	ColorYellow:       3,
	ColorMagenta:      5,
	ColorCyan:         6,
	ColorWhite:        7,
	ColorBrightRed:    9,
	ColorBrightGreen:  10,
	ColorBrightYellow: 11,
	ColorGray:         245,
}

// ANSI returns the palette index for c, or -1 for the terminal default.
func (c Color) ANSI() int {
	if int(c) >= len(ansiCodes) {
		return -1
	}
	return ansiCodes[c]
}
