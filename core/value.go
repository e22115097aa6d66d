package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numericPattern extracts a leading signed decimal and an optional SI prefix.
// The prefix is matched case-sensitively because m (milli) and M (mega)
// differ only by case.
var numericPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)\s*([pnumkKMG])?`)

// siMultipliers maps an SI prefix to its multiplier.
var siMultipliers = map[string]float64{
	"p": 1e-12,
	"n": 1e-9,
	"u": 1e-6,
	"m": 1e-3,
	"k": 1e3,
	"K": 1e3,
	"M": 1e6,
	"G": 1e9,
}

// unicodeReplacer folds the unicode adornments common in vendor parametric
// data into plain ASCII before any parsing or comparison.
var unicodeReplacer = strings.NewReplacer(
	"Ω", "Ohm",
	"Ω", "Ohm", // U+2126 OHM SIGN vs U+03A9 GREEK CAPITAL OMEGA
	"µ", "u",
	"μ", "u",
	"±", "",
	"°", "",
	"~", " to ",
)

// NormalizeValue canonicalizes a raw attribute value for identity
// comparison: unicode folding, case folding, and whitespace removal, so
// "10 kΩ" and "10kOhm" compare equal.
func NormalizeValue(s string) string {
	s = unicodeReplacer.Replace(strings.TrimSpace(s))
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), "")
}

// ParseNumeric parses a raw attribute value into a float in base units,
// honoring SI prefixes ("4.7uF" -> 4.7e-6, "10 kOhm" -> 10000). Percent and
// ppm values parse to their face number since rules compare them against
// values in the same unit. Returns false for anything non-numeric.
func ParseNumeric(raw string) (float64, bool) {
	s := unicodeReplacer.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}

	m := numericPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	if m[2] != "" {
		rest := s[len(m[0])-len(m[2]):]
		if isUnitWord(rest) {
			// The "prefix" is really the start of a unit word (e.g. "5 mm",
			// "100 MHz" is fine but "10 mOhm" vs "10 m" needs the word check).
			return v, true
		}
		v *= siMultipliers[m[2]]
	}
	return v, true
}

// isUnitWord reports whether the remainder of a value string after the
// numeric part is a bare unit rather than an SI prefix plus unit. "mm" and
// "mil" are dimensions, not milli-anything.
func isUnitWord(rest string) bool {
	switch strings.ToLower(strings.TrimSpace(rest)) {
	case "mm", "mil", "mils", "min", "max":
		return true
	}
	return false
}

// NumericOf returns the attribute's numeric value, preferring a numeric
// value already parsed by the data provider over re-parsing the raw string.
func NumericOf(rawValue string, cached *float64) (float64, bool) {
	if cached != nil {
		return *cached, true
	}
	return ParseNumeric(rawValue)
}

// ParseRange parses a declared interval such as "-40°C to +85°C",
// "-55 ~ 125" or "2.7 V to 36 V" into its endpoints.
func ParseRange(raw string) (lo, hi float64, ok bool) {
	s := unicodeReplacer.Replace(strings.TrimSpace(raw))
	for _, sep := range []string{" to ", "to", "...", "..", "/"} {
		if !strings.Contains(s, sep) {
			continue
		}
		parts := strings.SplitN(s, sep, 2)
		a, okA := ParseNumeric(strings.TrimSpace(parts[0]))
		b, okB := ParseNumeric(strings.TrimSpace(parts[1]))
		if okA && okB {
			if a > b {
				a, b = b, a
			}
			return a, b, true
		}
	}
	return 0, 0, false
}

// ParseFlag interprets a raw value as a boolean capability marker. Absent,
// negative and placeholder values all read as "does not have it".
func ParseFlag(raw string) bool {
	switch NormalizeValue(raw) {
	case "", "no", "none", "false", "0", "-", "n/a", "na":
		return false
	}
	return true
}

// WithinTolerance reports whether candidate is within the given fraction of
// the source value. A zero source only matches a zero candidate.
func WithinTolerance(source, candidate, fraction float64) bool {
	if source == 0 {
		return candidate == 0
	}
	diff := source - candidate
	if diff < 0 {
		diff = -diff
	}
	bound := source * fraction
	if bound < 0 {
		bound = -bound
	}
	return diff <= bound
}

// hierarchyIndex returns the index of a value in an upgrade hierarchy using
// normalized comparison, or -1 when the value is not a known tier.
func hierarchyIndex(hierarchy []string, raw string) int {
	norm := NormalizeValue(raw)
	for i, tier := range hierarchy {
		if NormalizeValue(tier) == norm {
			return i
		}
	}
	return -1
}

// formatNumeric renders a parsed numeric with trailing zeros trimmed, for
// use in human-readable notes.
func formatNumeric(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) > 12 {
		s = fmt.Sprintf("%.4g", v)
	}
	return s
}
