package core

// Color represents the color of a screen cell or a locked playfield cell.
// ColorNone doubles as "empty" for playfield cells and as the default
// terminal foreground for text.
type Color uint8

// The seven piece colors plus UI colors.
const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorOrange
	ColorBlue
	ColorPurple
	ColorCyan
	ColorWhite
	ColorGray
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorOrange:
		return "orange"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
