// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints a ranked match report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.MatchReport, cfg *contract.Config, duration time.Duration) error {
	return WriteReportResults(report, cfg, duration)
}

// WriteExplain prints the full rule-by-rule breakdown for every candidate in
// the report using the configured output format.
func (ow *OutWriter) WriteExplain(report *schema.MatchReport, cfg *contract.Config, duration time.Duration) error {
	return WriteExplainResults(report, cfg, duration)
}

// WriteFamilies prints the registered component families using the configured output format.
func (ow *OutWriter) WriteFamilies(tables []schema.LogicTable, cfg *contract.Config) error {
	return WriteFamilyResults(tables, cfg)
}

// WriteQuestions prints a family's qualifying questions using the configured output format.
func (ow *OutWriter) WriteQuestions(config *schema.FamilyContextConfig, cfg *contract.Config) error {
	return WriteQuestionResults(config, cfg)
}

// WriteLogicTable prints one family's full rule set using the configured output format.
func (ow *OutWriter) WriteLogicTable(table *schema.LogicTable, cfg *contract.Config) error {
	return WriteLogicTableResults(table, cfg)
}

// WriteCacheStatus prints cache backend status information.
func (ow *OutWriter) WriteCacheStatus(status schema.CacheStatus, cfg *contract.Config) error {
	return WriteCacheStatusResults(status, cfg)
}
