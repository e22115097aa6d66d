package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/internal/parquet"
	"github.com/altsource/altsource/schema"
)

// WriteReportResults outputs a ranked match report, dispatching based on the output format configured.
func WriteReportResults(report *schema.MatchReport, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeReportCSVResults(report, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires an output file")
		}
		if err := parquet.WriteReportParquet(report, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeReportJSONResults handles opening the file and calling the JSON writer.
func writeReportJSONResults(report *schema.MatchReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForReport(w, report)
	}, "Wrote JSON")
}

// writeReportCSVResults handles opening the file and calling the CSV writer.
func writeReportCSVResults(report *schema.MatchReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForReport(csvWriter, report, fmtFloat, intFmt)
	}, "Wrote CSV")
}

// candidateStatus summarizes a candidate's overall outcome in one word.
func candidateStatus(c *schema.CandidateEvaluation) string {
	switch {
	case c.Blocked:
		return string(schema.VerdictBlocked)
	case c.Passed:
		return string(schema.VerdictPass)
	default:
		return string(schema.VerdictFail)
	}
}

// writeReportTable generates and writes the human-readable candidate ranking.
func writeReportTable(report *schema.MatchReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "MPN", "Manufacturer", "Match", "Label", "Status"}
	if cfg.Detail {
		headers = append(headers, "Score", "Lifecycle", "Price", "Stock")
	}
	if cfg.Explain {
		headers = append(headers, "Issues")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	for i := range report.Candidates {
		c := &report.Candidates[i]
		row := []string{
			strconv.Itoa(i + 1),                                 // Rank
			c.Candidate.MPN,                                     // MPN
			c.Candidate.Manufacturer,                            // Manufacturer
			fmtFloat(c.MatchPercentage) + "%",                   // Match
			contract.GetColorLabel(c.MatchPercentage),           // Label
			getColorVerdict(schema.Verdict(candidateStatus(c))), // Status
		}
		if cfg.Detail {
			row = append(
				row,
				fmt.Sprintf("%s/%s", fmtFloat(c.AwardedWeight), fmtFloat(c.PossibleWeight)), // Score
				c.Candidate.Lifecycle,                                                       // Lifecycle
				formatPrice(c.Candidate.UnitPrice),                                          // Price
				strconv.Itoa(c.Candidate.Stock),                                             // Stock
			)
		}
		if cfg.Explain {
			issues := formatTopRuleBreakdown(c)
			row = append(row, contract.TruncateText(issues, getMaxReasonWidth(cfg))) // Top issues
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Summary lines
	if _, err := fmt.Fprintf(writer, "Showing top %d candidates (%d passed) for %s [%s]\n",
		len(report.Candidates), report.PassedCount(), report.Source.Part.MPN, report.FamilyName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Matching completed in %v with %d workers. Cache backend: %s\n",
		duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForReport writes the candidate ranking in CSV format.
func writeCSVResultsForReport(w *csv.Writer, report *schema.MatchReport, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"mpn",
		"manufacturer",
		"match_pct",
		"label",
		"status",
		"awarded_weight",
		"possible_weight",
		"lifecycle",
		"unit_price",
		"stock",
		"block_reasons",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range report.Candidates {
		c := &report.Candidates[i]
		rec := []string{
			strconv.Itoa(i + 1),                       // Rank
			c.Candidate.MPN,                           // MPN
			c.Candidate.Manufacturer,                  // Manufacturer
			fmtFloat(c.MatchPercentage),               // Match Percentage
			contract.GetPlainLabel(c.MatchPercentage), // Label
			candidateStatus(c),                        // Status
			fmtFloat(c.AwardedWeight),                 // Awarded Weight
			fmtFloat(c.PossibleWeight),                // Possible Weight
			c.Candidate.Lifecycle,                     // Lifecycle
			fmtFloat(c.Candidate.UnitPrice),           // Unit Price
			fmt.Sprintf(intFmt, c.Candidate.Stock),    // Stock
			strings.Join(c.BlockReasons, "|"),         // Block Reasons
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForReport writes the match report in JSON format.
func writeJSONResultsForReport(w io.Writer, report *schema.MatchReport) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONCandidate struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.CandidateEvaluation
	}
	type JSONReport struct {
		ReportID    string                `json:"report_id"`
		FamilyID    string                `json:"family_id"`
		FamilyName  string                `json:"family_name"`
		Source      schema.PartAttributes `json:"source"`
		Candidates  []JSONCandidate       `json:"candidates"`
		GeneratedAt time.Time             `json:"generated_at"`
	}

	output := JSONReport{
		ReportID:    report.ReportID,
		FamilyID:    report.FamilyID,
		FamilyName:  report.FamilyName,
		Source:      report.Source,
		Candidates:  make([]JSONCandidate, len(report.Candidates)),
		GeneratedAt: report.GeneratedAt,
	}
	for i, c := range report.Candidates {
		output.Candidates[i] = JSONCandidate{
			Rank:                i + 1,
			Label:               contract.GetPlainLabel(c.MatchPercentage),
			CandidateEvaluation: c,
		}
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
