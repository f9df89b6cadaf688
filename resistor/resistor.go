// Package resistor decodes resistor color bands into a resistance value.
//
// Assemble builds a Resistor from already-resolved digits and band values.
// Parse and ParseBands resolve a sequence of colors through a colorcode.Table
// first and report the first band whose color is not legal for its position.
package resistor

import (
	"fmt"
	"math"
)

// Sentinel values for bands that were not given to Assemble.
const (
	NoTolerance       = 0
	NoTempCoefficient = -1
)

const (
	minExponent = -2
	maxExponent = 9
)

// Resistor is a decoded resistor. It is an immutable value: any change to a
// band produces a new Resistor.
type Resistor struct {
	significant     uint64
	exponent        int
	tolerance       float64
	tempCoefficient int64
}

// Assemble builds a Resistor from two or three digits, most significant first,
// a power-of-ten exponent, a tolerance fraction and a temperature coefficient
// in ppm/K. Pass NoTolerance or NoTempCoefficient for bands that are absent.
//
// Assemble panics if the arguments break its contract: the digit count must be
// 2 or 3, every digit at most 9, the exponent within [-2, 9] and the tolerance
// within [0, 1].
func Assemble(digits []uint8, exponent int, tolerance float64, tempCoefficient int64) Resistor {
	if len(digits) < 2 || len(digits) > 3 {
		panic(fmt.Sprintf("resistor: need 2 or 3 digits, got %d", len(digits)))
	}
	if exponent < minExponent || exponent > maxExponent {
		panic(fmt.Sprintf("resistor: exponent %d out of range", exponent))
	}
	if tolerance < 0 || tolerance > 1 || math.IsNaN(tolerance) {
		panic(fmt.Sprintf("resistor: tolerance %v out of range", tolerance))
	}
	if tempCoefficient < NoTempCoefficient {
		panic(fmt.Sprintf("resistor: temperature coefficient %d out of range", tempCoefficient))
	}

	var significant uint64
	for _, d := range digits {
		if d > 9 {
			panic(fmt.Sprintf("resistor: invalid digit %d", d))
		}
		significant = significant*10 + uint64(d)
	}

	return Resistor{
		significant:     significant,
		exponent:        exponent,
		tolerance:       tolerance,
		tempCoefficient: tempCoefficient,
	}
}

// Significant returns the integer formed by the digit bands.
func (r Resistor) Significant() uint64 {
	return r.significant
}

// Exponent returns the power of ten the significant digits are scaled by.
func (r Resistor) Exponent() int {
	return r.exponent
}

// Tolerance returns the tolerance fraction, if the resistor has one.
func (r Resistor) Tolerance() (float64, bool) {
	return r.tolerance, r.tolerance != NoTolerance
}

// TempCoefficient returns the temperature coefficient in ppm/K, if any.
func (r Resistor) TempCoefficient() (uint32, bool) {
	if r.tempCoefficient == NoTempCoefficient {
		return 0, false
	}
	return uint32(r.tempCoefficient), true
}

// Resistance returns the nominal resistance in ohms.
func (r Resistor) Resistance() float64 {
	if r.exponent < 0 {
		// 10^-n has no exact binary form; divide by 10^n instead.
		return float64(r.significant) / math.Pow10(-r.exponent)
	}
	return float64(r.significant) * math.Pow10(r.exponent)
}

// MinResistance returns the lower bound of the tolerance range in ohms.
func (r Resistor) MinResistance() (float64, bool) {
	tol, ok := r.Tolerance()
	if !ok {
		return 0, false
	}
	return r.Resistance() * (1 - tol), true
}

// MaxResistance returns the upper bound of the tolerance range in ohms.
func (r Resistor) MaxResistance() (float64, bool) {
	tol, ok := r.Tolerance()
	if !ok {
		return 0, false
	}
	return r.Resistance() * (1 + tol), true
}
