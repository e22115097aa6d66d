package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// WriteQuestionResults outputs a family's qualifying questions, dispatching
// based on the output format configured.
func WriteQuestionResults(config *schema.FamilyContextConfig, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, config)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w,
				[]string{"question_id", "prompt", "priority", "options", "depends_on"},
				func(csvWriter *csv.Writer) error {
					for _, q := range config.Questions {
						rec := []string{
							q.ID,
							q.Prompt,
							strconv.Itoa(q.Priority),
							formatOptionValues(&q),
							formatCondition(&q),
						}
						if err := csvWriter.Write(rec); err != nil {
							return err
						}
					}
					return nil
				})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeQuestionTable(config, w)
		}, "Wrote table")
	}
}

// writeQuestionTable generates and writes the human-readable question listing.
func writeQuestionTable(config *schema.FamilyContextConfig, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Qualifying questions for %s:\n", config.FamilyID); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Prompt", "Options", "Depends On"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for i := range config.Questions {
		q := &config.Questions[i]
		data = append(data, []string{
			q.ID,
			contract.TruncateText(q.Prompt, 60),
			formatOptionValues(q),
			formatCondition(q),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatOptionValues joins a question's option values for compact display.
func formatOptionValues(q *schema.ContextQuestion) string {
	values := make([]string, len(q.Options))
	for i := range q.Options {
		values[i] = q.Options[i].Value
	}
	joined := strings.Join(values, ", ")
	if q.AllowFreeText {
		joined += ", <free text>"
	}
	return joined
}

// formatCondition renders a question's gating condition, empty when absent.
func formatCondition(q *schema.ContextQuestion) string {
	if q.Condition == nil {
		return ""
	}
	return fmt.Sprintf("%s in (%s)", q.Condition.QuestionID, strings.Join(q.Condition.AnyOf, ", "))
}
