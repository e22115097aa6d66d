package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/altsource/altsource/internal/contract"
)

// questionsCmd lists the qualifying questions for a family.
var questionsCmd = &cobra.Command{
	Use:   "questions <family-id>",
	Short: "Show the qualifying questions for a family.",
	Long: `Print the qualifying questions registered for a component family.

Answers to these questions are passed to 'altsource match' via --answer
and escalate the rule table before evaluation. Follow-up questions only
apply when their condition matches an earlier answer.

Examples:
  # See what the resistor family asks
  altsource questions chip_resistor

  # Then answer while matching
  altsource match RC0603FR-0710KL --answer application=automotive`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		config, ok := reg.ContextConfig(args[0])
		if !ok {
			contract.LogFatal("Cannot list questions", fmt.Errorf("no qualifying questions registered for family %s", args[0]))
		}
		if err := writer.WriteQuestions(config, cfg); err != nil {
			contract.LogFatal("Cannot write question list", err)
		}
	},
}
