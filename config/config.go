// Package config loads rescalc settings from the environment and an optional
// .env file.
package config

import (
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/Saecki/ResCalc/format"
	"github.com/Saecki/ResCalc/selection"
)

// Environment variables read by Load and FromEnv.
const (
	// EnvFractionDigits is the maximum number of fractional digits printed (0-6).
	EnvFractionDigits = "RESCALC_FRACTION_DIGITS"
	// EnvToleranceStyle is "percent" or "fraction".
	EnvToleranceStyle = "RESCALC_TOLERANCE_STYLE"
	// EnvRequireAllBands makes a selection wait for all six bands.
	EnvRequireAllBands = "RESCALC_REQUIRE_ALL_BANDS"
)

const maxFractionDigits = 6

// Config holds the display and selection settings.
type Config struct {
	FractionDigits  int
	ToleranceStyle  format.ToleranceStyle
	RequireAllBands bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		FractionDigits: 2,
		ToleranceStyle: format.Percent,
	}
}

// Load reads the .env file in the working directory, if there is one, and
// then the environment. Malformed values are reported, not replaced.
func Load() (Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}
	return FromEnv()
}

// FromEnv reads the settings from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()

	digits, err := getEnvInt(EnvFractionDigits, cfg.FractionDigits)
	if err != nil {
		return Config{}, err
	}
	cfg.FractionDigits = digits

	cfg.ToleranceStyle = format.ToleranceStyle(getEnv(EnvToleranceStyle, string(cfg.ToleranceStyle)))

	allBands, err := getEnvBool(EnvRequireAllBands, cfg.RequireAllBands)
	if err != nil {
		return Config{}, err
	}
	cfg.RequireAllBands = allBands

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are within range.
func (c Config) Validate() error {
	if c.FractionDigits < 0 || c.FractionDigits > maxFractionDigits {
		return errors.Errorf("fraction digits must be between 0 and %d, got %d", maxFractionDigits, c.FractionDigits)
	}
	switch c.ToleranceStyle {
	case format.Percent, format.Fraction:
	default:
		return errors.Errorf("tolerance style must be %q or %q, got %q", format.Percent, format.Fraction, c.ToleranceStyle)
	}
	return nil
}

// Formatter returns the formatter described by the settings.
func (c Config) Formatter() format.Formatter {
	return format.Formatter{
		FractionDigits: c.FractionDigits,
		ToleranceStyle: c.ToleranceStyle,
	}
}

// Policy returns the band selection policy described by the settings.
func (c Config) Policy() selection.Policy {
	if c.RequireAllBands {
		return selection.AllBands
	}
	return selection.MinimumBands
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return intVal, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "parse %s", key)
	}
	return boolVal, nil
}
