package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal platform.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink   // pig boss
	ColorPurple // octopus boss
	ColorBrown  // bugs, dirt
	ColorGold   // overlay text
	ColorSilver // blades
)
