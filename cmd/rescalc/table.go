package main

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Saecki/ResCalc/colorcode"
	"github.com/Saecki/ResCalc/format"
)

const columnGap = "  "

// printTable writes one row per color with its meaning in every role, or "-"
// where the color has none, followed by the color's swatch.
func printTable(w io.Writer, f format.Formatter) error {
	header := []string{"color"}
	for _, role := range colorcode.Roles() {
		header = append(header, role.String())
	}
	header = append(header, "swatch")

	rows := [][]string{header}
	for _, c := range colorcode.Colors() {
		rows = append(rows, tableRow(c, f))
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString(columnGap)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func tableRow(c colorcode.Color, f format.Formatter) []string {
	row := []string{c.String()}
	for _, role := range colorcode.Roles() {
		row = append(row, roleCell(c, role, f))
	}
	return append(row, colorcode.SwatchFor(c).Background)
}

func roleCell(c colorcode.Color, role colorcode.Role, f format.Formatter) string {
	if !colorcode.Defined(c, role) {
		return "-"
	}
	switch role {
	case colorcode.RoleFirstDigit:
		d, _ := colorcode.FirstDigit(c)
		return string('0' + rune(d))
	case colorcode.RoleOtherDigit:
		d, _ := colorcode.OtherDigit(c)
		return string('0' + rune(d))
	case colorcode.RoleMultiplier:
		if m, err := format.Multiplier(colorcode.Multiplier(c)); err == nil {
			return m
		}
	case colorcode.RoleTolerance:
		tol, _ := colorcode.Tolerance(c)
		return "±" + f.Tolerance(tol)
	case colorcode.RoleTempCoefficient:
		tc, _ := colorcode.TempCoefficient(c)
		return format.TempCoefficient(tc)
	}
	return "-"
}
