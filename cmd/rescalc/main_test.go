package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Saecki/ResCalc/colorcode"
	"github.com/Saecki/ResCalc/config"
	"github.com/Saecki/ResCalc/resistor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(config.Default(), args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestRunDecodesSixBands(t *testing.T) {
	out, err := runWith(t, "", "brown", "black", "black", "red", "gold", "brown")
	require.NoError(t, err)

	expected := "Resistance: 10kΩ\n" +
		"Digits:     100 ×100\n" +
		"Tolerance:  ±5%\n" +
		"Range:      9.5kΩ - 10.5kΩ\n" +
		"Temp. co.:  100ppm/K\n"
	assert.Equal(t, expected, out)
}

func TestRunDecodesFourBands(t *testing.T) {
	out, err := runWith(t, "", "Yellow", "Violet", "Red", "Gold")
	require.NoError(t, err)
	assert.Contains(t, out, "Resistance: 4.7kΩ\n")
	assert.NotContains(t, out, "Temp. co.")
}

func TestRunReportsInvalidBand(t *testing.T) {
	// Black has no first digit value, so decoding stops at band 0 before the
	// orange tolerance band is looked at.
	_, err := runWith(t, "", "black", "orange", "black", "black", "orange", "black")
	require.Error(t, err)
	assert.ErrorIs(t, err, resistor.ErrInvalidBand)
	assert.EqualError(t, err, "decode bands: band 0: black has no first digit value")
}

func TestRunReportsUnknownColor(t *testing.T) {
	_, err := runWith(t, "", "brown", "pink", "red", "gold")
	require.Error(t, err)
	assert.ErrorIs(t, err, colorcode.ErrUnknownColor)
	assert.Contains(t, err.Error(), "band 1")
}

func TestRunReportsBandCount(t *testing.T) {
	_, err := runWith(t, "", "brown", "black", "red")
	assert.ErrorIs(t, err, resistor.ErrBandCount)
}

func TestRunWithoutColors(t *testing.T) {
	out, err := runWith(t, "")
	require.Error(t, err)
	assert.Contains(t, out, "Usage: rescalc")
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	out, err := runWith(t, "", "-tolerance-style", "fraction", "-digits", "0", "brown", "green", "red", "gold")
	require.NoError(t, err)
	assert.Contains(t, out, "Resistance: 2kΩ\n")
	assert.Contains(t, out, "Tolerance:  ±0.05\n")

	_, err = runWith(t, "", "-tolerance-style", "ppm", "brown", "green", "red", "gold")
	assert.Error(t, err)
}

func TestRunTable(t *testing.T) {
	out, err := runWith(t, "", "-table")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 1+colorcode.NumColors)
	assert.True(t, strings.HasPrefix(lines[0], "color"))
	assert.True(t, strings.HasSuffix(lines[0], "swatch"))

	fields := strings.Fields(lines[1])
	assert.Equal(t, []string{"black", "-", "0", "×1", "-", "-", "#000000"}, fields)

	fields = strings.Fields(lines[2])
	assert.Equal(t, []string{"brown", "1", "1", "×10", "±1%", "100ppm/K", "#6d3f20"}, fields)

	fields = strings.Fields(lines[12])
	assert.Equal(t, []string{"silver", "-", "-", "×0.01", "±10%", "-", "#e6e8fa"}, fields)
}

func TestRunInteractive(t *testing.T) {
	script := strings.Join([]string{
		"set digit1 yellow",
		"set digit2 violet",
		"set multiplier red",
		"set tolerance orange",
		"set tolerance gold",
		"clear multiplier",
		"frobnicate",
		"",
		"show",
	}, "\n")

	out, err := runWith(t, script, "-i")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "-", lines[0])
	assert.Equal(t, "-", lines[1])
	assert.Equal(t, "4.7kΩ", lines[2])
	assert.Equal(t, "error: band 4: orange has no tolerance value (want one of brown, red, green, blue, violet, gray, gold, silver)", lines[3])
	assert.Equal(t, "4.7kΩ ±5% (4.46kΩ..4.93kΩ)", lines[4])
	assert.Equal(t, "-", lines[5])
	assert.True(t, strings.HasPrefix(lines[6], "error: unknown command"))
	assert.Equal(t, "-", lines[7])
}

func TestRunInteractiveAllBands(t *testing.T) {
	script := "set digit1 yellow\nset digit2 violet\nset multiplier red\n"
	out, err := runWith(t, script, "-i", "-all-bands")
	require.NoError(t, err)
	assert.Equal(t, "-\n-\n-\n", out)
}
