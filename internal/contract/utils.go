package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Match quality label constants.
const (
	DropInValue      = "Drop-in"     // parametrically interchangeable
	CloseValue       = "Close"       // minor deviations, usually acceptable
	ConditionalValue = "Conditional" // acceptable only after engineering review
	PoorValue        = "Poor"        // significant parametric gaps
)

// Color variables for console output.
var (
	DropInColor      = color.New(color.FgGreen, color.Bold) // safe to substitute
	CloseColor       = color.New(color.FgCyan)              // informational, low risk
	ConditionalColor = color.New(color.FgYellow)            // caution, review required
	PoorColor        = color.New(color.FgRed, color.Bold)   // danger
)

// GetPlainLabel returns a plain text label for a candidate's match
// percentage. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(percentage float64) string {
	switch {
	case percentage >= 90:
		return DropInValue
	case percentage >= 75:
		return CloseValue
	case percentage >= 50:
		return ConditionalValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(percentage float64) string {
	text := GetPlainLabel(percentage)

	switch text {
	case DropInValue:
		return DropInColor.Sprint(text)
	case CloseValue:
		return CloseColor.Sprint(text)
	case ConditionalValue:
		return ConditionalColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for part cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".altsource_cache.db"
	}
	return filepath.Join(homeDir, ".altsource_cache.db")
}

// TruncateText truncates a string to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for both the ellipsis and at least
// one character of content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
