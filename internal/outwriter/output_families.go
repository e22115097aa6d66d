package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// WriteFamilyResults outputs the registered families, dispatching based on the output format configured.
func WriteFamilyResults(tables []schema.LogicTable, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForFamilies(w, tables)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w,
				[]string{"family_id", "family_name", "category", "rules", "description"},
				func(csvWriter *csv.Writer) error {
					for i := range tables {
						t := &tables[i]
						rec := []string{t.FamilyID, t.FamilyName, t.Category, strconv.Itoa(len(t.Rules)), t.Description}
						if err := csvWriter.Write(rec); err != nil {
							return err
						}
					}
					return nil
				})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFamilyTable(tables, w)
		}, "Wrote table")
	}
}

// writeFamilyTable generates and writes the human-readable family listing.
func writeFamilyTable(tables []schema.LogicTable, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Family", "Name", "Category", "Rules", "Description"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for i := range tables {
		t := &tables[i]
		data = append(data, []string{
			t.FamilyID,
			t.FamilyName,
			t.Category,
			strconv.Itoa(len(t.Rules)),
			contract.TruncateText(t.Description, 50),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "%d families registered\n", len(tables))
	return err
}

// writeJSONResultsForFamilies writes the family listing in JSON format.
func writeJSONResultsForFamilies(w io.Writer, tables []schema.LogicTable) error {
	type JSONFamily struct {
		FamilyID    string `json:"family_id"`
		FamilyName  string `json:"family_name"`
		Category    string `json:"category"`
		RuleCount   int    `json:"rule_count"`
		Description string `json:"description,omitempty"`
	}

	output := make([]JSONFamily, len(tables))
	for i := range tables {
		t := &tables[i]
		output[i] = JSONFamily{
			FamilyID:    t.FamilyID,
			FamilyName:  t.FamilyName,
			Category:    t.Category,
			RuleCount:   len(t.Rules),
			Description: t.Description,
		}
	}
	return writeJSON(w, output)
}
