package format

import (
	"testing"

	"github.com/Saecki/ResCalc/resistor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOhms(t *testing.T) {
	testCases := []struct {
		ohms     float64
		expected string
	}{
		{0.1, "0.1Ω"},
		{4.7, "4.7Ω"},
		{22, "22Ω"},
		{999, "999Ω"},
		{1000, "1kΩ"},
		{4700, "4.7kΩ"},
		{10000, "10kΩ"},
		{1234567, "1.23MΩ"},
		{2.2e6, "2.2MΩ"},
		{1e9, "1GΩ"},
		{999e9, "999GΩ"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Ohms(tc.ohms))
	}
}

func TestTolerance(t *testing.T) {
	testCases := []struct {
		tolerance float64
		expected  string
	}{
		{0.1, "10%"},
		{0.05, "5%"},
		{0.01, "1%"},
		{0.005, "0.5%"},
		{0.0025, "0.25%"},
		{0.001, "0.1%"},
		{0.0005, "0.05%"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Tolerance(tc.tolerance))
	}
}

func TestToleranceFractionStyle(t *testing.T) {
	f := Formatter{FractionDigits: 2, ToleranceStyle: Fraction}
	assert.Equal(t, "0.005", f.Tolerance(0.005))
	assert.Equal(t, "0.1", f.Tolerance(0.1))
}

func TestMultiplier(t *testing.T) {
	expected := []string{"×0.01", "×0.1", "×1", "×10", "×100", "×1k", "×10k", "×100k", "×1M", "×10M", "×100M", "×1G"}
	for exp := -2; exp <= 9; exp++ {
		got, err := Multiplier(exp)
		require.NoError(t, err)
		assert.Equal(t, expected[exp+2], got)
	}

	_, err := Multiplier(10)
	assert.ErrorIs(t, err, ErrUnknownMultiplier)
	_, err = Multiplier(-3)
	assert.ErrorIs(t, err, ErrUnknownMultiplier)
}

func TestTempCoefficient(t *testing.T) {
	assert.Equal(t, "100ppm/K", TempCoefficient(100))
	assert.Equal(t, "5ppm/K", TempCoefficient(5))
}

func TestFractionDigits(t *testing.T) {
	f := Formatter{FractionDigits: 0, ToleranceStyle: Percent}
	assert.Equal(t, "5kΩ", f.Ohms(4700))
	assert.Equal(t, "100Ω", f.Ohms(100))

	f = Formatter{FractionDigits: 3, ToleranceStyle: Percent}
	assert.Equal(t, "1.235MΩ", f.Ohms(1234567))
}

func TestFormatResistor(t *testing.T) {
	r := resistor.Assemble([]uint8{1, 0, 0}, 2, 0.05, 100)
	assert.Equal(t, "10kΩ ±5% (9.5kΩ..10.5kΩ) 100ppm/K", Default.Resistor(r))

	bare := resistor.Assemble([]uint8{4, 7}, -1, resistor.NoTolerance, resistor.NoTempCoefficient)
	assert.Equal(t, "4.7Ω", Default.Resistor(bare))
}
