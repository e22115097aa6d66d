package cmd

import (
	"github.com/spf13/cobra"

	"github.com/altsource/altsource/core"
	"github.com/altsource/altsource/internal/contract"
)

// classifyCmd resolves a part to its component family.
var classifyCmd = &cobra.Command{
	Use:   "classify <mpn>",
	Short: "Resolve a part to its component family.",
	Long: `Fetch a part from the catalog and resolve the family its rules come from.

Classification runs the same pipeline matching uses: the catalog category
picks a base family, enrichment derives missing attributes, then classifier
rules may move the part into a stricter sub-family.

Examples:
  # A current sense resistor leaves the generic resistor family
  altsource classify WSL2512R0100FEA

  # Force the category when the catalog label is wrong
  altsource classify GRM188R71H104KA93D --for mlcc`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		part, err := provider.GetPart(rootCtx, args[0])
		if err != nil {
			contract.LogFatal("Cannot fetch part", err)
		}

		category, _ := cmd.Flags().GetString("for")
		if category == "" {
			category = part.Part.Category
		}
		baseTable, err := reg.TableForCategory(category)
		if err != nil {
			contract.LogFatal("Cannot classify part", err)
		}

		enriched := core.EnrichAttributes(baseTable.FamilyID, &part, reg.Enrichers())
		familyID := core.ClassifyFamily(baseTable.FamilyID, &enriched, reg.ClassifierRules())
		table := baseTable
		if familyID != baseTable.FamilyID {
			if t, err := reg.Table(familyID); err == nil {
				table = t
			}
		}

		cmd.Printf("MPN:      %s (%s)\n", part.Part.MPN, part.Part.Manufacturer)
		cmd.Printf("Category: %s\n", category)
		cmd.Printf("Family:   %s (%s)\n", table.FamilyID, table.FamilyName)
		if table.FamilyID != baseTable.FamilyID {
			cmd.Printf("Base:     %s\n", baseTable.FamilyID)
		}
	},
}
