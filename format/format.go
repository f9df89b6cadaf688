// Package format renders decoded resistor values for display.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Saecki/ResCalc/resistor"
)

// ToleranceStyle selects how tolerances are rendered.
type ToleranceStyle string

const (
	// Percent renders 0.05 as "5%".
	Percent ToleranceStyle = "percent"
	// Fraction renders 0.05 as "0.05".
	Fraction ToleranceStyle = "fraction"
)

// ErrUnknownMultiplier is returned for exponents without a band color.
var ErrUnknownMultiplier = errors.New("unknown multiplier exponent")

var multipliers = map[int]string{
	-2: "×0.01",
	-1: "×0.1",
	0:  "×1",
	1:  "×10",
	2:  "×100",
	3:  "×1k",
	4:  "×10k",
	5:  "×100k",
	6:  "×1M",
	7:  "×10M",
	8:  "×100M",
	9:  "×1G",
}

var units = []struct {
	scale  float64
	suffix string
}{
	{1e9, "GΩ"},
	{1e6, "MΩ"},
	{1e3, "kΩ"},
}

// Formatter renders values with a fixed number of fractional digits.
type Formatter struct {
	FractionDigits int
	ToleranceStyle ToleranceStyle
}

// Default renders at most two fractional digits and tolerances as percentages.
var Default = Formatter{FractionDigits: 2, ToleranceStyle: Percent}

// Ohms formats a resistance with the default formatter, e.g. "4.7kΩ".
func Ohms(r float64) string {
	return Default.Ohms(r)
}

// Tolerance formats a tolerance fraction with the default formatter, e.g. "0.5%".
func Tolerance(f float64) string {
	return Default.Tolerance(f)
}

// Multiplier returns the abbreviation of a power-of-ten exponent, e.g. "×1k".
func Multiplier(exponent int) (string, error) {
	if s, ok := multipliers[exponent]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownMultiplier, exponent)
}

// TempCoefficient formats a temperature coefficient, e.g. "100ppm/K".
func TempCoefficient(ppm uint32) string {
	return strconv.FormatUint(uint64(ppm), 10) + "ppm/K"
}

// Ohms scales r to Ω, kΩ, MΩ or GΩ.
func (f Formatter) Ohms(r float64) string {
	for _, u := range units {
		if r >= u.scale {
			return f.decimal(r/u.scale) + u.suffix
		}
	}
	return f.decimal(r) + "Ω"
}

// Tolerance renders a tolerance fraction in the configured style.
func (f Formatter) Tolerance(tol float64) string {
	if f.ToleranceStyle == Fraction {
		return strconv.FormatFloat(tol, 'f', -1, 64)
	}
	return f.decimal(tol*100) + "%"
}

// Resistor renders a one-line summary such as "10kΩ ±5% (9.5kΩ..10.5kΩ) 100ppm/K".
func (f Formatter) Resistor(r resistor.Resistor) string {
	var sb strings.Builder
	sb.WriteString(f.Ohms(r.Resistance()))

	if tol, ok := r.Tolerance(); ok {
		lo, _ := r.MinResistance()
		hi, _ := r.MaxResistance()
		fmt.Fprintf(&sb, " ±%s (%s..%s)", f.Tolerance(tol), f.Ohms(lo), f.Ohms(hi))
	}
	if tc, ok := r.TempCoefficient(); ok {
		sb.WriteString(" " + TempCoefficient(tc))
	}
	return sb.String()
}

// decimal prints v with at most FractionDigits digits after the point.
func (f Formatter) decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', f.FractionDigits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
