package colorcode

// Swatch is the pair of RGB hex colors used to paint a band: the band itself
// and legible text on top of it.
type Swatch struct {
	Background string
	Foreground string
}

var swatches = [NumColors]Swatch{
	Black:  {Background: "#000000", Foreground: "#ffffff"},
	Brown:  {Background: "#6d3f20", Foreground: "#ffffff"},
	Red:    {Background: "#ff0000", Foreground: "#ffffff"},
	Orange: {Background: "#f48b02", Foreground: "#ffffff"},
	Yellow: {Background: "#f5ed06", Foreground: "#000000"},
	Green:  {Background: "#00ff00", Foreground: "#000000"},
	Blue:   {Background: "#0000ff", Foreground: "#ffffff"},
	Violet: {Background: "#ff00ff", Foreground: "#ffffff"},
	Gray:   {Background: "#888888", Foreground: "#ffffff"},
	White:  {Background: "#ffffff", Foreground: "#000000"},
	Gold:   {Background: "#ffc700", Foreground: "#000000"},
	Silver: {Background: "#e6e8fa", Foreground: "#000000"},
}

// SwatchFor returns the display colors for c.
func SwatchFor(c Color) Swatch {
	return swatches[c]
}
