package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ohm sign folds to word", "10 kΩ", "10kohm"},
		{"micro sign folds to u", "4.7 µF", "4.7uf"},
		{"plus minus stripped", "±5%", "5%"},
		{"case and spacing", "  X7R  ", "x7r"},
		{"inner whitespace collapsed", "Tape  &  Reel", "tape&reel"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeValue(tt.in))
		})
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"plain integer", "100", 100, true},
		{"decimal", "0.25", 0.25, true},
		{"negative", "-55", -55, true},
		{"kilo prefix with unit", "10 kOhm", 10000, true},
		{"kilo prefix uppercase", "10K", 10000, true},
		{"micro prefix", "4.7uF", 4.7e-6, true},
		{"micro sign", "22 µF", 22e-6, true},
		{"milli prefix", "10 mOhm", 0.01, true},
		{"mega prefix", "1MHz", 1e6, true},
		{"pico prefix", "100pF", 100e-12, true},
		{"millimeters are not milli", "5 mm", 5, true},
		{"mil is not milli", "125 mil", 125, true},
		{"tolerance with adornment", "±1%", 1, true},
		{"non-numeric", "X7R", 0, false},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumeric(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InEpsilon(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseNumericZero(t *testing.T) {
	got, ok := ParseNumeric("0")
	assert.True(t, ok)
	assert.Zero(t, got)
}

func TestNumericOfPrefersCachedValue(t *testing.T) {
	cached := 42.0
	got, ok := NumericOf("not a number", &cached)
	assert.True(t, ok)
	assert.Equal(t, 42.0, got)

	got, ok = NumericOf("10k", nil)
	assert.True(t, ok)
	assert.Equal(t, 10000.0, got)
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		lo, hi float64
		ok     bool
	}{
		{"celsius with signs", "-40°C to +85°C", -40, 85, true},
		{"tilde separator", "-55 ~ 125", -55, 125, true},
		{"volts", "2.7 V to 36 V", 2.7, 36, true},
		{"reversed endpoints swap", "125 to -55", -55, 125, true},
		{"no separator", "125", 0, 0, false},
		{"non-numeric side", "cold to 125", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := ParseRange(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.lo, lo)
				assert.Equal(t, tt.hi, hi)
			}
		})
	}
}

func TestParseFlag(t *testing.T) {
	for _, falsy := range []string{"", "No", "none", "FALSE", "0", "-", "N/A", "na"} {
		assert.False(t, ParseFlag(falsy), falsy)
	}
	for _, truthy := range []string{"Yes", "true", "1", "AEC-Q200", "Kelvin (4-wire)"} {
		assert.True(t, ParseFlag(truthy), truthy)
	}
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, WithinTolerance(100, 105, 0.05))
	assert.True(t, WithinTolerance(100, 95, 0.05))
	assert.False(t, WithinTolerance(100, 106, 0.05))

	// A zero source only matches a zero candidate.
	assert.True(t, WithinTolerance(0, 0, 0.05))
	assert.False(t, WithinTolerance(0, 0.001, 0.05))

	// Negative values use the magnitude of the bound.
	assert.True(t, WithinTolerance(-100, -104, 0.05))
	assert.False(t, WithinTolerance(-100, -110, 0.05))
}

func TestHierarchyIndex(t *testing.T) {
	hierarchy := []string{"X8R", "X7R", "X5R"}
	assert.Equal(t, 0, hierarchyIndex(hierarchy, "X8R"))
	assert.Equal(t, 1, hierarchyIndex(hierarchy, " x7r "))
	assert.Equal(t, -1, hierarchyIndex(hierarchy, "Y5V"))
	assert.Equal(t, -1, hierarchyIndex(hierarchy, ""))
}

func TestFormatNumeric(t *testing.T) {
	assert.Equal(t, "10000", formatNumeric(10000))
	assert.Equal(t, "0.25", formatNumeric(0.25))
	assert.Equal(t, "-55", formatNumeric(-55))

	// Long expansions fall back to compact notation.
	assert.Equal(t, "0.3333", formatNumeric(1.0/3.0))
}
