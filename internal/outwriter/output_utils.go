package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// Verdict colors for console output.
var (
	passColor    = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	reviewColor  = color.New(color.FgYellow)
	blockedColor = color.New(color.FgRed, color.Bold)
	skippedColor = color.New(color.Faint)
)

// getColorVerdict returns a colored verdict string for console output.
func getColorVerdict(verdict schema.Verdict) string {
	text := strings.ToUpper(string(verdict))
	switch verdict {
	case schema.VerdictPass:
		return passColor.Sprint(text)
	case schema.VerdictFail:
		return failColor.Sprint(text)
	case schema.VerdictReview:
		return reviewColor.Sprint(text)
	case schema.VerdictBlocked:
		return blockedColor.Sprint(text)
	default:
		return skippedColor.Sprint(text)
	}
}

const topNRules = 3

// formatTopRuleBreakdown names the heaviest rules that kept a candidate from
// a clean pass, best-weighted first. An empty result means every scored rule
// passed outright.
func formatTopRuleBreakdown(eval *schema.CandidateEvaluation) string {
	var problems []schema.RuleEvaluationResult
	for _, r := range eval.Results {
		switch r.Verdict {
		case schema.VerdictFail, schema.VerdictBlocked, schema.VerdictReview:
			problems = append(problems, r)
		}
	}

	if len(problems) == 0 {
		return "All rules pass"
	}

	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].Weight > problems[j].Weight
	})

	limit := min(len(problems), topNRules)
	parts := make([]string, 0, limit)
	for i := range limit {
		parts = append(parts, problems[i].AttributeID)
	}
	return strings.Join(parts, " > ")
}

// formatPrice renders a unit price, blank when unknown.
func formatPrice(price float64) string {
	if price <= 0 {
		return ""
	}
	return fmt.Sprintf("$%.4f", price)
}
