// Package colorcode provides the static color table used to read resistor bands.
// Each of the twelve band colors carries a numeric meaning for some of the five
// band roles: a leading digit, a following digit, a power-of-ten multiplier, a
// tolerance, and a temperature coefficient.
//
// # Roles
//
// The digit and multiplier meanings are all derived from a single exponent per
// color:
//
//   - Multiplier: every color, exponent in [-2, 9].
//   - OtherDigit: colors whose exponent is at least 0 (digits 0-9).
//   - FirstDigit: colors whose exponent is strictly positive (digits 1-9), so a
//     decoded value never starts with a zero.
//
// Tolerance and temperature coefficient are assigned per color and are absent
// for several of them (e.g. Black has neither).
//
// # Lookups
//
// All lookups are total over the closed set of colors and return a (value, ok)
// pair where a meaning may be absent. The Table interface groups the lookups so
// that decoders can be handed an alternative table; Standard is the fixed one.
package colorcode
