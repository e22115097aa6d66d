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

// WriteLogicTableResults outputs one family's full rule set, dispatching
// based on the output format configured.
func WriteLogicTableResults(table *schema.LogicTable, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, table)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w,
				[]string{"attribute_id", "display_name", "logic_type", "direction", "weight", "block_on_missing", "tolerance", "hierarchy", "rationale"},
				func(csvWriter *csv.Writer) error {
					for _, r := range table.Rules {
						rec := []string{
							r.AttributeID,
							r.DisplayName,
							string(r.LogicType),
							string(r.ThresholdDirection),
							strconv.Itoa(r.Weight),
							strconv.FormatBool(r.BlockOnMissing),
							strconv.FormatFloat(r.ToleranceFraction, 'f', -1, 64),
							strings.Join(r.UpgradeHierarchy, "|"),
							r.Rationale,
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
			return writeLogicTableTable(table, w)
		}, "Wrote table")
	}
}

// writeLogicTableTable generates and writes the human-readable rule dump.
func writeLogicTableTable(lt *schema.LogicTable, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "%s (%s) rules:\n", lt.FamilyName, lt.FamilyID); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Attribute", "Logic", "Direction", "Weight", "Block", "Tolerance", "Rationale"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, r := range lt.Rules {
		logic := string(r.LogicType)
		if len(r.UpgradeHierarchy) > 0 {
			logic += " [" + strings.Join(r.UpgradeHierarchy, " > ") + "]"
		}
		tolerance := ""
		if r.ToleranceFraction > 0 {
			tolerance = strconv.FormatFloat(r.ToleranceFraction, 'f', -1, 64)
		}
		block := ""
		if r.BlockOnMissing {
			block = "yes"
		}
		data = append(data, []string{
			r.DisplayName,
			contract.TruncateText(logic, 40),
			string(r.ThresholdDirection),
			strconv.Itoa(r.Weight),
			block,
			tolerance,
			contract.TruncateText(r.Rationale, 45),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "%d rules\n", len(lt.Rules))
	return err
}
