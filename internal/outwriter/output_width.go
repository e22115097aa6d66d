package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/altsource/altsource/internal/contract"
)

// getMaxReasonWidth calculates the maximum width for the explain/note column
// in table output based on terminal width and table configuration.
func getMaxReasonWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 45 // Rank + MPN + Manufacturer + Match + Label with borders/padding

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 40 // Score + Lifecycle + Price + Stock columns with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	// Calculate available space for the reason text
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable reason width
		return 15
	}
	if available > 60 {
		// Maximum reason width to prevent overly long cells
		return 60
	}
	return available
}
