package outwriter

import (
	"fmt"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// emojiPrefix returns the prefix when emojis are enabled, empty otherwise.
func emojiPrefix(cfg *contract.Config, prefix string) string {
	if cfg.UseEmojis {
		return prefix
	}
	return ""
}

// LogMatchHeader prints a concise, 2-line header before a matching run.
// Structured outputs stay clean so they can be piped or written to files.
func LogMatchHeader(cfg *contract.Config, sourceMPN string) {
	if cfg.Output != schema.TableOut || cfg.OutputFile != "" {
		return
	}
	fmt.Printf("%sSource: %s (catalog: %s)\n", emojiPrefix(cfg, "🔎 "), sourceMPN, cfg.CatalogSource)
	fmt.Printf("%sEvaluating up to %d candidates with %d workers\n\n", emojiPrefix(cfg, "🧮 "), cfg.CandidateLimit, cfg.Workers)
}
