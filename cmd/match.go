package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/altsource/altsource/core"
	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/internal/outwriter"
)

// matchCmd finds and ranks substitute candidates for a source part.
var matchCmd = &cobra.Command{
	Use:   "match <source-mpn>",
	Short: "Rank substitute candidates for a part.",
	Long: `Find substitute candidates for a manufacturer part number and rank them
by weighted rule score.

The source part is fetched from the catalog, enriched, classified into a
component family and evaluated against every candidate in that family.
Every candidate gets a verdict per rule, so rejections are explainable.

Context answers tighten the rules: answering a qualifying question can
raise weights, add rules or turn soft failures into hard blocks. Use
'altsource questions <family-id>' to see what a family asks.

Examples:
  # Rank substitutes for a 10k chip resistor
  altsource match RC0603FR-0710KL

  # Automotive application: escalate the rules accordingly
  altsource match RC0603FR-0710KL --answer application=automotive

  # Override a wrong catalog category and show candidate metadata
  altsource match GRM188R71H104KA93D --for mlcc --detail

  # Pin a source attribute the vendor data got wrong
  altsource match RC0603FR-0710KL --set tolerance_pct=1

  # Export the ranking for a sourcing pipeline
  altsource match RC0603FR-0710KL --output parquet --output-file ranking.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("for")
		answers, _ := cmd.Flags().GetStringToString("answer")
		overrides, _ := cmd.Flags().GetStringToString("set")

		req := &core.MatchRequest{
			SourceMPN: args[0],
			Category:  category,
			Answers:   answers,
			Overrides: overrides,
		}

		outwriter.LogMatchHeader(cfg, req.SourceMPN)
		start := time.Now()
		report, err := core.FindSubstitutes(rootCtx, reg, provider, cfg, req)
		if err != nil {
			contract.LogFatal("Cannot run substitute matching", err)
		}
		if err := writer.WriteReport(report, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write match report", err)
		}
	},
}

// explainCmd evaluates a single candidate and explains every rule verdict.
var explainCmd = &cobra.Command{
	Use:   "explain <source-mpn> <candidate-mpn>",
	Short: "Explain every rule verdict for one candidate.",
	Long: `Evaluate one specific candidate against a source part and print the
full rule-by-rule breakdown grouped by category.

Use this to answer "why did this part rank where it did":
- Which rules passed, failed or need engineering review
- What the source and candidate values were for each attribute
- Why a candidate was blocked outright

Examples:
  # Explain a cross from Yageo to Vishay
  altsource explain RC0603FR-0710KL CRCW060310K0FKEA

  # Same, but with the automotive rules applied
  altsource explain RC0603FR-0710KL CRCW060310K0FKEA --answer application=automotive`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("for")
		answers, _ := cmd.Flags().GetStringToString("answer")

		req := &core.MatchRequest{
			SourceMPN: args[0],
			Category:  category,
			Answers:   answers,
		}

		start := time.Now()
		report, err := core.ExplainMatch(rootCtx, reg, provider, cfg, req, args[1])
		if err != nil {
			contract.LogFatal("Cannot evaluate candidate", err)
		}
		if err := writer.WriteExplain(report, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write explanation", err)
		}
	},
}
