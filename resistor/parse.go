package resistor

import (
	"errors"
	"fmt"

	"github.com/Saecki/ResCalc/colorcode"
)

var (
	// ErrInvalidBand matches every ColorError.
	ErrInvalidBand = errors.New("invalid band color")
	// ErrBandCount is returned by ParseBands for unsupported band counts.
	ErrBandCount = errors.New("unsupported number of bands")
)

// ColorError reports a band whose color has no meaning in the role of its
// position.
type ColorError struct {
	Position int
	Color    colorcode.Color
	Role     colorcode.Role
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("band %d: %s has no %s value", e.Position, e.Color, e.Role)
}

func (e *ColorError) Unwrap() error {
	return ErrInvalidBand
}

// layouts maps a band count to the role of each position.
var layouts = map[int][]colorcode.Role{
	4: {
		colorcode.RoleFirstDigit, colorcode.RoleOtherDigit,
		colorcode.RoleMultiplier, colorcode.RoleTolerance,
	},
	5: {
		colorcode.RoleFirstDigit, colorcode.RoleOtherDigit, colorcode.RoleOtherDigit,
		colorcode.RoleMultiplier, colorcode.RoleTolerance,
	},
	6: {
		colorcode.RoleFirstDigit, colorcode.RoleOtherDigit, colorcode.RoleOtherDigit,
		colorcode.RoleMultiplier, colorcode.RoleTolerance, colorcode.RoleTempCoefficient,
	},
}

// Decoder resolves band colors through a color table. Values a table returns
// outside the ranges Assemble accepts are reported as a ColorError, as is a
// tolerance of zero.
type Decoder struct {
	table colorcode.Table
}

// NewDecoder returns a Decoder backed by table.
func NewDecoder(table colorcode.Table) *Decoder {
	return &Decoder{table: table}
}

var standardDecoder = NewDecoder(colorcode.Standard)

// Parse decodes exactly six bands with the standard color table.
func Parse(colors []colorcode.Color) (Resistor, error) {
	return standardDecoder.Parse(colors)
}

// ParseBands decodes a 4, 5 or 6 band resistor with the standard color table.
func ParseBands(colors []colorcode.Color) (Resistor, error) {
	return standardDecoder.ParseBands(colors)
}

// Parse decodes exactly six bands: three digits, multiplier, tolerance and
// temperature coefficient. Bands are resolved left to right and the first band
// without a meaning for its position is returned as a *ColorError; the bands
// after it are not looked up.
//
// Parse panics if len(colors) != 6.
func (d *Decoder) Parse(colors []colorcode.Color) (Resistor, error) {
	if len(colors) != 6 {
		panic(fmt.Sprintf("resistor: Parse needs 6 bands, got %d", len(colors)))
	}
	return d.decode(colors, layouts[6])
}

// ParseBands decodes a resistor with 4 bands (two digits, multiplier,
// tolerance), 5 bands (three digits, multiplier, tolerance) or the 6 band
// layout of Parse. Other lengths return ErrBandCount.
func (d *Decoder) ParseBands(colors []colorcode.Color) (Resistor, error) {
	roles, ok := layouts[len(colors)]
	if !ok {
		return Resistor{}, fmt.Errorf("%w: %d", ErrBandCount, len(colors))
	}
	return d.decode(colors, roles)
}

func (d *Decoder) decode(colors []colorcode.Color, roles []colorcode.Role) (Resistor, error) {
	var (
		digits          = make([]uint8, 0, 3)
		exponent        int
		tolerance       float64 = NoTolerance
		tempCoefficient int64   = NoTempCoefficient
	)

	for pos, role := range roles {
		c := colors[pos]
		if !c.Valid() {
			return Resistor{}, &ColorError{Position: pos, Color: c, Role: role}
		}

		ok := true
		switch role {
		case colorcode.RoleFirstDigit:
			var digit uint8
			digit, ok = d.table.FirstDigit(c)
			ok = ok && digit <= 9
			digits = append(digits, digit)
		case colorcode.RoleOtherDigit:
			var digit uint8
			digit, ok = d.table.OtherDigit(c)
			ok = ok && digit <= 9
			digits = append(digits, digit)
		case colorcode.RoleMultiplier:
			exponent = d.table.Multiplier(c)
			ok = exponent >= minExponent && exponent <= maxExponent
		case colorcode.RoleTolerance:
			// A zero tolerance cannot be told apart from NoTolerance.
			tolerance, ok = d.table.Tolerance(c)
			ok = ok && tolerance > 0 && tolerance <= 1
		case colorcode.RoleTempCoefficient:
			var tc uint32
			tc, ok = d.table.TempCoefficient(c)
			tempCoefficient = int64(tc)
		}
		if !ok {
			return Resistor{}, &ColorError{Position: pos, Color: c, Role: role}
		}
	}

	return Assemble(digits, exponent, tolerance, tempCoefficient), nil
}
