// Package selection holds the band colors a user has picked so far and derives
// the decoded resistor from them on demand.
package selection

import (
	"errors"
	"fmt"

	"github.com/Saecki/ResCalc/colorcode"
	"github.com/Saecki/ResCalc/resistor"
)

// Slot is one of the six selectable bands.
type Slot uint8

const (
	Digit1 Slot = iota
	Digit2
	Digit3
	Multiplier
	Tolerance
	TempCoefficient
)

// NumSlots is the number of bands a Selection holds.
const NumSlots = int(TempCoefficient) + 1

var slotRoles = [NumSlots]colorcode.Role{
	Digit1:          colorcode.RoleFirstDigit,
	Digit2:          colorcode.RoleOtherDigit,
	Digit3:          colorcode.RoleOtherDigit,
	Multiplier:      colorcode.RoleMultiplier,
	Tolerance:       colorcode.RoleTolerance,
	TempCoefficient: colorcode.RoleTempCoefficient,
}

var slotNames = [NumSlots]string{
	Digit1:          "digit1",
	Digit2:          "digit2",
	Digit3:          "digit3",
	Multiplier:      "multiplier",
	Tolerance:       "tolerance",
	TempCoefficient: "tempco",
}

// ErrUnknownSlot is returned for slot names that do not exist.
var ErrUnknownSlot = errors.New("unknown band slot")

// Role returns the role a color in this slot plays.
func (s Slot) Role() colorcode.Role {
	return slotRoles[s]
}

func (s Slot) String() string {
	if int(s) >= NumSlots {
		return fmt.Sprintf("slot(%d)", uint8(s))
	}
	return slotNames[s]
}

// ParseSlot returns the slot with the given name, as printed by String.
func ParseSlot(name string) (Slot, error) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, name)
}

// Policy decides which bands must be picked before a result is available.
type Policy uint8

const (
	// MinimumBands needs the first two digits and the multiplier.
	MinimumBands Policy = iota
	// AllBands needs all six bands.
	AllBands
)

type band struct {
	color colorcode.Color
	set   bool
}

// Selection is the set of picked band colors. The zero value is an empty
// selection with the MinimumBands policy. It is not safe for concurrent use.
type Selection struct {
	policy Policy
	bands  [NumSlots]band
}

// New returns an empty selection using policy.
func New(policy Policy) *Selection {
	return &Selection{policy: policy}
}

// Select picks c for slot s. Colors without a meaning in the slot's role are
// rejected and leave the selection unchanged.
func (sel *Selection) Select(s Slot, c colorcode.Color) error {
	if int(s) >= NumSlots {
		return fmt.Errorf("%w: %d", ErrUnknownSlot, s)
	}
	if !colorcode.Defined(c, s.Role()) {
		return &resistor.ColorError{Position: int(s), Color: c, Role: s.Role()}
	}
	sel.bands[s] = band{color: c, set: true}
	return nil
}

// Clear removes the pick for slot s.
func (sel *Selection) Clear(s Slot) {
	if int(s) < NumSlots {
		sel.bands[s] = band{}
	}
}

// Reset clears every slot.
func (sel *Selection) Reset() {
	sel.bands = [NumSlots]band{}
}

// Get returns the color picked for slot s.
func (sel *Selection) Get(s Slot) (colorcode.Color, bool) {
	if int(s) >= NumSlots {
		return 0, false
	}
	b := sel.bands[s]
	return b.color, b.set
}

// Complete reports whether enough bands are picked for a result.
func (sel *Selection) Complete() bool {
	required := []Slot{Digit1, Digit2, Multiplier}
	if sel.policy == AllBands {
		required = []Slot{Digit1, Digit2, Digit3, Multiplier, Tolerance, TempCoefficient}
	}
	for _, s := range required {
		if !sel.bands[s].set {
			return false
		}
	}
	return true
}

// Resistor decodes the current picks. It reports false until the policy's
// required bands are picked. The result is recomputed on every call.
func (sel *Selection) Resistor() (resistor.Resistor, bool) {
	if !sel.Complete() {
		return resistor.Resistor{}, false
	}

	digits := make([]uint8, 0, 3)
	for _, s := range []Slot{Digit1, Digit2, Digit3} {
		b := sel.bands[s]
		if !b.set {
			continue
		}
		var d uint8
		if s == Digit1 {
			d, _ = colorcode.FirstDigit(b.color)
		} else {
			d, _ = colorcode.OtherDigit(b.color)
		}
		digits = append(digits, d)
	}

	exponent := colorcode.Multiplier(sel.bands[Multiplier].color)

	tolerance := float64(resistor.NoTolerance)
	if b := sel.bands[Tolerance]; b.set {
		tolerance, _ = colorcode.Tolerance(b.color)
	}

	tempCoefficient := int64(resistor.NoTempCoefficient)
	if b := sel.bands[TempCoefficient]; b.set {
		tc, _ := colorcode.TempCoefficient(b.color)
		tempCoefficient = int64(tc)
	}

	return resistor.Assemble(digits, exponent, tolerance, tempCoefficient), true
}
