package colorcode

import (
	"errors"
	"fmt"
	"strings"
)

// Color identifies one of the twelve resistor band colors.
type Color uint8

// The band colors, ordered by exponent from 0 to 9 and then Gold (-1) and
// Silver (-2).
const (
	// Black is digit 0 and multiplier ×1.
	Black Color = iota
	// Brown is digit 1, multiplier ×10, tolerance 1% and 100ppm/K.
	Brown
	// Red is digit 2, multiplier ×100, tolerance 2% and 50ppm/K.
	Red
	// Orange is digit 3, multiplier ×1k and 15ppm/K.
	Orange
	// Yellow is digit 4, multiplier ×10k and 25ppm/K.
	Yellow
	// Green is digit 5, multiplier ×100k and tolerance 0.5%.
	Green
	// Blue is digit 6, multiplier ×1M, tolerance 0.25% and 10ppm/K.
	Blue
	// Violet is digit 7, multiplier ×10M, tolerance 0.1% and 5ppm/K.
	Violet
	// Gray is digit 8, multiplier ×100M and tolerance 0.05%.
	Gray
	// White is digit 9 and multiplier ×1G.
	White
	// Gold is multiplier ×0.1 and tolerance 5%.
	Gold
	// Silver is multiplier ×0.01 and tolerance 10%.
	Silver
)

// NumColors is the number of defined colors.
const NumColors = int(Silver) + 1

// Absent tolerance and temperature coefficient markers in the attribute table.
const (
	noTolerance       = 0
	noTempCoefficient = -1
)

// ErrUnknownColor is returned when a name does not match any band color.
var ErrUnknownColor = errors.New("unknown color")

type attributes struct {
	name            string
	exponent        int
	tolerance       float64
	tempCoefficient int64
}

// table lists the colors in ordinal order.
var table = [NumColors]attributes{
	Black:  {name: "black", exponent: 0, tolerance: noTolerance, tempCoefficient: noTempCoefficient},
	Brown:  {name: "brown", exponent: 1, tolerance: 0.01, tempCoefficient: 100},
	Red:    {name: "red", exponent: 2, tolerance: 0.02, tempCoefficient: 50},
	Orange: {name: "orange", exponent: 3, tolerance: noTolerance, tempCoefficient: 15},
	Yellow: {name: "yellow", exponent: 4, tolerance: noTolerance, tempCoefficient: 25},
	Green:  {name: "green", exponent: 5, tolerance: 0.005, tempCoefficient: noTempCoefficient},
	Blue:   {name: "blue", exponent: 6, tolerance: 0.0025, tempCoefficient: 10},
	Violet: {name: "violet", exponent: 7, tolerance: 0.001, tempCoefficient: 5},
	Gray:   {name: "gray", exponent: 8, tolerance: 0.0005, tempCoefficient: noTempCoefficient},
	White:  {name: "white", exponent: 9, tolerance: noTolerance, tempCoefficient: noTempCoefficient},
	Gold:   {name: "gold", exponent: -1, tolerance: 0.05, tempCoefficient: noTempCoefficient},
	Silver: {name: "silver", exponent: -2, tolerance: 0.1, tempCoefficient: noTempCoefficient},
}

// colorsByName is a precomputed map for looking up colors by lower-case name.
var colorsByName = func() map[string]Color {
	m := make(map[string]Color, NumColors+1)
	for i, attr := range table {
		m[attr.name] = Color(i)
	}
	m["grey"] = Gray
	return m
}()

// Colors returns every color in ordinal order.
func Colors() []Color {
	colors := make([]Color, NumColors)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

// Parse returns the color with the given English name. Matching ignores case
// and surrounding whitespace; "grey" is accepted for Gray.
func Parse(name string) (Color, error) {
	if c, exists := colorsByName[strings.ToLower(strings.TrimSpace(name))]; exists {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Valid reports whether c is one of the defined colors.
func (c Color) Valid() bool {
	return int(c) < NumColors
}

// String returns the lower-case color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return table[c].name
}

// FirstDigit returns the digit c stands for in the leading band.
// Black, Gold and Silver have none.
func FirstDigit(c Color) (uint8, bool) {
	if exp := table[c].exponent; exp > 0 {
		return uint8(exp), true
	}
	return 0, false
}

// OtherDigit returns the digit c stands for in a non-leading digit band.
func OtherDigit(c Color) (uint8, bool) {
	if exp := table[c].exponent; exp >= 0 {
		return uint8(exp), true
	}
	return 0, false
}

// Multiplier returns the power-of-ten exponent of c.
func Multiplier(c Color) int {
	return table[c].exponent
}

// Tolerance returns the tolerance fraction of c, e.g. 0.05 for Gold.
func Tolerance(c Color) (float64, bool) {
	tol := table[c].tolerance
	return tol, tol != noTolerance
}

// TempCoefficient returns the temperature coefficient of c in ppm/K.
func TempCoefficient(c Color) (uint32, bool) {
	tc := table[c].tempCoefficient
	if tc == noTempCoefficient {
		return 0, false
	}
	return uint32(tc), true
}
