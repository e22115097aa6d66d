package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// categoryOrder fixes the display grouping for rule results.
var categoryOrder = []schema.RuleCategory{
	schema.CategoryParametric,
	schema.CategoryFit,
	schema.CategoryReview,
	schema.CategoryOperational,
}

// categoryHeadings maps rule categories to their section headings.
var categoryHeadings = map[schema.RuleCategory]string{
	schema.CategoryParametric:  "Parametric rules",
	schema.CategoryFit:         "Fit rules",
	schema.CategoryReview:      "Review rules",
	schema.CategoryOperational: "Operational rules",
}

// WriteExplainResults outputs the full rule-by-rule breakdown for every
// candidate in the report, dispatching based on the output format configured.
func WriteExplainResults(report *schema.MatchReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		// The report JSON already carries every rule result.
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeExplainCSVResults(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExplainTable(report, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeExplainCSVResults handles opening the file and calling the CSV writer.
func writeExplainCSVResults(report *schema.MatchReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForExplain(csvWriter, report, fmtFloat)
	}, "Wrote CSV")
}

// writeExplainTable renders the per-candidate rule breakdowns.
func writeExplainTable(report *schema.MatchReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Source: %s (%s) [%s]\n",
		report.Source.Part.MPN, report.Source.Part.Manufacturer, report.FamilyName); err != nil {
		return err
	}

	for i := range report.Candidates {
		c := &report.Candidates[i]
		if _, err := fmt.Fprintf(writer, "\nCandidate %d: %s (%s) %s%% %s\n",
			i+1, c.Candidate.MPN, c.Candidate.Manufacturer,
			fmtFloat(c.MatchPercentage), contract.GetColorLabel(c.MatchPercentage)); err != nil {
			return err
		}
		for _, reason := range c.BlockReasons {
			if _, err := fmt.Fprintf(writer, "  Blocked: %s\n", reason); err != nil {
				return err
			}
		}

		for _, category := range categoryOrder {
			if err := writeCategorySection(writer, cfg, c, category, fmtFloat); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "\nMatching completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCategorySection renders one category's rule results for a candidate,
// skipping categories the evaluation has no rules in.
func writeCategorySection(writer io.Writer, cfg *contract.Config, c *schema.CandidateEvaluation, category schema.RuleCategory, fmtFloat func(float64) string) error {
	var rows [][]string
	for _, r := range c.Results {
		if r.Category != category {
			continue
		}
		awarded := fmtFloat(r.AwardedWeight)
		if !r.CountsToScore {
			awarded = "n/a"
		}
		rows = append(rows, []string{
			r.DisplayName,
			string(r.LogicType),
			r.SourceValue,
			r.CandidateValue,
			getColorVerdict(r.Verdict),
			strconv.Itoa(r.Weight),
			awarded,
			contract.TruncateText(r.Note, getMaxReasonWidth(cfg)),
		})
	}
	if len(rows) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(writer, "%s:\n", categoryHeadings[category]); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Attribute", "Logic", "Source", "Candidate", "Verdict", "Weight", "Awarded", "Note"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForExplain writes every rule result as one flat CSV row.
func writeCSVResultsForExplain(w *csv.Writer, report *schema.MatchReport, fmtFloat func(float64) string) error {
	header := []string{
		"candidate_mpn",
		"attribute_id",
		"display_name",
		"logic_type",
		"category",
		"source_value",
		"candidate_value",
		"verdict",
		"weight",
		"awarded_weight",
		"counts_to_score",
		"note",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range report.Candidates {
		c := &report.Candidates[i]
		for _, r := range c.Results {
			rec := []string{
				c.Candidate.MPN,
				r.AttributeID,
				r.DisplayName,
				string(r.LogicType),
				string(r.Category),
				r.SourceValue,
				r.CandidateValue,
				string(r.Verdict),
				strconv.Itoa(r.Weight),
				fmtFloat(r.AwardedWeight),
				strconv.FormatBool(r.CountsToScore),
				r.Note,
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}
