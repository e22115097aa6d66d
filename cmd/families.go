package cmd

import (
	"github.com/spf13/cobra"

	"github.com/altsource/altsource/internal/contract"
)

// familiesCmd lists the registered component families.
var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the registered component families.",
	Long: `List every component family the matcher knows about, with its rule count.

Families are the unit of matching: a source part is classified into exactly
one family and only candidates from that family are considered. Extra
families can be registered with --tables.

Examples:
  # List built-in families
  altsource families

  # Include families from a custom tables file
  altsource families --tables ./my-tables.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := writer.WriteFamilies(reg.Families(), cfg); err != nil {
			contract.LogFatal("Cannot write family list", err)
		}
	},
}
