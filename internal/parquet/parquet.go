// Package parquet exports match reports to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// CandidateRow is one evaluated candidate flattened for columnar export.
type CandidateRow struct {
	// ReportID ties the row back to the report it came from
	ReportID string `parquet:"report_id,snappy"`

	// FamilyID is the logic table family the evaluation ran under
	FamilyID string `parquet:"family_id,snappy"`

	// SourceMPN is the part being replaced
	SourceMPN string `parquet:"source_mpn,snappy"`

	// Rank is the candidate's position in the ranked report, 1-based
	Rank int32 `parquet:"rank,snappy"`

	// CandidateMPN and CandidateManufacturer identify the proposed substitute
	CandidateMPN          string `parquet:"candidate_mpn,snappy"`
	CandidateManufacturer string `parquet:"candidate_manufacturer,snappy"`

	// Lifecycle is the candidate's reported lifecycle status (nullable)
	Lifecycle *string `parquet:"lifecycle,optional,snappy"`

	// MatchPercentage is the weighted score, 0-100
	MatchPercentage float64 `parquet:"match_percentage,snappy"`

	// Label is the plain quality label derived from the percentage
	Label string `parquet:"label,snappy"`

	Passed  bool `parquet:"passed,snappy"`
	Blocked bool `parquet:"blocked,snappy"`

	// AwardedWeight and PossibleWeight are the score numerator and denominator
	AwardedWeight  float64 `parquet:"awarded_weight,snappy"`
	PossibleWeight float64 `parquet:"possible_weight,snappy"`

	// Rule verdict tallies across the candidate's evaluation
	RulesPassed int32 `parquet:"rules_passed,snappy"`
	RulesFailed int32 `parquet:"rules_failed,snappy"`
	RulesReview int32 `parquet:"rules_review,snappy"`

	// GeneratedAt is the report timestamp (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`
}

// ConvertReport flattens a match report into candidate rows.
func ConvertReport(report *schema.MatchReport) []CandidateRow {
	rows := make([]CandidateRow, len(report.Candidates))
	for i := range report.Candidates {
		c := &report.Candidates[i]

		var passed, failed, review int32
		for j := range c.Results {
			switch c.Results[j].Verdict {
			case schema.VerdictPass:
				passed++
			case schema.VerdictFail, schema.VerdictBlocked:
				failed++
			case schema.VerdictReview:
				review++
			}
		}

		var lifecycle *string
		if c.Candidate.Lifecycle != "" {
			lifecycle = &c.Candidate.Lifecycle
		}

		rows[i] = CandidateRow{
			ReportID:              report.ReportID,
			FamilyID:              report.FamilyID,
			SourceMPN:             report.Source.Part.MPN,
			Rank:                  int32(i + 1),
			CandidateMPN:          c.Candidate.MPN,
			CandidateManufacturer: c.Candidate.Manufacturer,
			Lifecycle:             lifecycle,
			MatchPercentage:       c.MatchPercentage,
			Label:                 contract.GetPlainLabel(c.MatchPercentage),
			Passed:                c.Passed,
			Blocked:               c.Blocked,
			AwardedWeight:         c.AwardedWeight,
			PossibleWeight:        c.PossibleWeight,
			RulesPassed:           passed,
			RulesFailed:           failed,
			RulesReview:           review,
			GeneratedAt:           report.GeneratedAt,
		}
	}
	return rows
}

// WriteReportParquet writes a match report's candidate rows to a Parquet file.
func WriteReportParquet(report *schema.MatchReport, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the CandidateRow struct tags
	writer := parquet.NewGenericWriter[CandidateRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(ConvertReport(report)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
