package core

// Color is the foreground color of a screen cell.
// The platform maps it to the terminal palette.
type Color uint8

// Palette used by the lander screens.
const (
	ColorDefault     Color = iota
	ColorYellow            // Landing pads
	ColorCyan              // Mission clock
	ColorWhite             // Ship, overlay frames
	ColorBrightRed         // Empty tank
	ColorBrightGreen       // Fuel
	ColorBrightWhite       // Readouts, nose indicator
	ColorOrange            // Engine flame
	ColorGray              // Ground, labels
)

var colorNames = [...]string{
	ColorDefault:     "default",
	ColorYellow:      "yellow",
	ColorCyan:        "cyan",
	ColorWhite:       "white",
	ColorBrightRed:   "bright-red",
	ColorBrightGreen: "bright-green",
	ColorBrightWhite: "bright-white",
	ColorOrange:      "orange",
	ColorGray:        "gray",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
