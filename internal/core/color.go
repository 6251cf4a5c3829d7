package core

// Color is a palette entry for a drawn cell or rectangle.
// Front ends map it to ANSI codes, CSS colors or RGBA values.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorSky
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorBrightGreen:  "lime",
	ColorBrightYellow: "gold",
	ColorSky:          "skyblue",
	ColorGray:         "gray",
}

// String returns the CSS-compatible name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "default"
}
