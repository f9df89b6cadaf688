package colorcode

import "fmt"

// Role is the meaning a band carries by virtue of its position.
type Role uint8

const (
	// RoleFirstDigit is the leading digit band; it is never zero.
	RoleFirstDigit Role = iota
	// RoleOtherDigit is any digit band after the first.
	RoleOtherDigit
	// RoleMultiplier is the power-of-ten band.
	RoleMultiplier
	// RoleTolerance is the tolerance band.
	RoleTolerance
	// RoleTempCoefficient is the temperature coefficient band.
	RoleTempCoefficient
)

var roleNames = [...]string{
	RoleFirstDigit:      "first digit",
	RoleOtherDigit:      "digit",
	RoleMultiplier:      "multiplier",
	RoleTolerance:       "tolerance",
	RoleTempCoefficient: "temperature coefficient",
}

// Roles returns every role in declaration order.
func Roles() []Role {
	return []Role{RoleFirstDigit, RoleOtherDigit, RoleMultiplier, RoleTolerance, RoleTempCoefficient}
}

func (r Role) String() string {
	if int(r) >= len(roleNames) {
		return fmt.Sprintf("role(%d)", uint8(r))
	}
	return roleNames[r]
}

// Table resolves band colors to their meaning in each role.
type Table interface {
	FirstDigit(c Color) (uint8, bool)
	OtherDigit(c Color) (uint8, bool)
	Multiplier(c Color) int
	Tolerance(c Color) (float64, bool)
	TempCoefficient(c Color) (uint32, bool)
}

type standardTable struct{}

func (standardTable) FirstDigit(c Color) (uint8, bool)       { return FirstDigit(c) }
func (standardTable) OtherDigit(c Color) (uint8, bool)       { return OtherDigit(c) }
func (standardTable) Multiplier(c Color) int                 { return Multiplier(c) }
func (standardTable) Tolerance(c Color) (float64, bool)      { return Tolerance(c) }
func (standardTable) TempCoefficient(c Color) (uint32, bool) { return TempCoefficient(c) }

// Standard is the IEC 60062 color table.
var Standard Table = standardTable{}

// Defined reports whether c has a meaning in role r.
func Defined(c Color, r Role) bool {
	if !c.Valid() {
		return false
	}
	var ok bool
	switch r {
	case RoleFirstDigit:
		_, ok = FirstDigit(c)
	case RoleOtherDigit:
		_, ok = OtherDigit(c)
	case RoleMultiplier:
		ok = true
	case RoleTolerance:
		_, ok = Tolerance(c)
	case RoleTempCoefficient:
		_, ok = TempCoefficient(c)
	}
	return ok
}

// ColorsFor returns the colors that have a meaning in role r, in ordinal order.
func ColorsFor(r Role) []Color {
	var colors []Color
	for _, c := range Colors() {
		if Defined(c, r) {
			colors = append(colors, c)
		}
	}
	return colors
}
