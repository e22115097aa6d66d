package cmd

import (
	"github.com/spf13/cobra"

	"github.com/altsource/altsource/internal/contract"
)

// tableCmd dumps the effective rule table for one family.
var tableCmd = &cobra.Command{
	Use:   "table <family-id>",
	Short: "Show the rule table for a component family.",
	Long: `Print the matching rules of a component family: logic type, direction,
weight, tolerance and whether a missing value blocks the candidate.

Sub-family tables are shown after their deltas are applied, so what you
see is exactly what the engine evaluates.

Examples:
  # Inspect the generic chip resistor rules
  altsource table chip_resistor

  # Inspect the tightened current sense sub-family
  altsource table current_sense_resistor`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		table, err := reg.Table(args[0])
		if err != nil {
			contract.LogFatal("Cannot resolve family", err)
		}
		if err := writer.WriteLogicTable(&table, cfg); err != nil {
			contract.LogFatal("Cannot write rule table", err)
		}
	},
}
