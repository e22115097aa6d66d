// Package registry holds the built-in logic tables, classifier rules and
// context questions for every supported component family, plus a YAML loader
// for site-specific additions.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/altsource/altsource/core"
	"github.com/altsource/altsource/schema"
)

// ErrUnsupportedFamily is returned when no logic table exists for a family
// or category label.
var ErrUnsupportedFamily = errors.New("unsupported component family")

// Registry is the canonical store of logic tables. It implements
// core.TableSource. A Registry is built once at startup and read-only
// afterwards, so it is safe for concurrent use.
type Registry struct {
	tables      map[string]schema.LogicTable
	categories  map[string]string // normalized category label -> family id
	contexts    map[string]*schema.FamilyContextConfig
	classifiers []core.ClassifierRule
	enrichers   []core.Enricher
}

// New returns a Registry populated with the built-in families.
func New() *Registry {
	r := &Registry{
		tables:     make(map[string]schema.LogicTable),
		categories: make(map[string]string),
		contexts:   make(map[string]*schema.FamilyContextConfig),
	}

	for _, table := range builtinTables() {
		r.RegisterTable(table)
	}
	for _, delta := range builtinDeltas() {
		if err := r.RegisterDelta(&delta); err != nil {
			// Built-in deltas reference built-in bases; a failure here is a
			// programming error caught by the package tests.
			panic(err)
		}
	}
	for label, familyID := range builtinCategoryLabels() {
		r.RegisterCategoryLabel(label, familyID)
	}
	for familyID, config := range builtinContextConfigs() {
		r.contexts[familyID] = config
	}
	r.classifiers = builtinClassifierRules()
	r.enrichers = builtinEnrichers()

	return r
}

// RegisterTable adds or replaces a family table. The table's own category
// label is registered as a lookup alias.
func (r *Registry) RegisterTable(table schema.LogicTable) {
	r.tables[table.FamilyID] = table
	if table.Category != "" {
		r.RegisterCategoryLabel(table.Category, table.FamilyID)
	}
	r.RegisterCategoryLabel(table.FamilyID, table.FamilyID)
}

// RegisterDelta derives a variant table from an existing base and registers it.
func (r *Registry) RegisterDelta(delta *schema.LogicTableDelta) error {
	base, ok := r.tables[delta.BaseFamilyID]
	if !ok {
		return fmt.Errorf("delta %s: base %s: %w", delta.FamilyID, delta.BaseFamilyID, ErrUnsupportedFamily)
	}
	r.RegisterTable(core.DeriveLogicTable(&base, delta))
	return nil
}

// RegisterCategoryLabel maps a free-text category label to a family id.
func (r *Registry) RegisterCategoryLabel(label, familyID string) {
	r.categories[normalizeLabel(label)] = familyID
}

// Table returns a deep copy of the table for a family id, so callers can
// escalate or override rules without affecting other requests.
func (r *Registry) Table(familyID string) (schema.LogicTable, error) {
	table, ok := r.tables[familyID]
	if !ok {
		return schema.LogicTable{}, fmt.Errorf("family %q: %w", familyID, ErrUnsupportedFamily)
	}
	return table.Clone(), nil
}

// TableForCategory resolves a free-text category label to a family table.
func (r *Registry) TableForCategory(label string) (schema.LogicTable, error) {
	familyID, ok := r.categories[normalizeLabel(label)]
	if !ok {
		return schema.LogicTable{}, fmt.Errorf("category %q: %w", label, ErrUnsupportedFamily)
	}
	return r.Table(familyID)
}

// ContextConfig returns the qualifying questions for a family, if any.
func (r *Registry) ContextConfig(familyID string) (*schema.FamilyContextConfig, bool) {
	config, ok := r.contexts[familyID]
	return config, ok
}

// ClassifierRules returns the ordered sub-family classifier rules.
func (r *Registry) ClassifierRules() []core.ClassifierRule {
	return r.classifiers
}

// Enrichers returns the attribute enrichment steps.
func (r *Registry) Enrichers() []core.Enricher {
	return r.enrichers
}

// Families returns every registered table, sorted by family id.
func (r *Registry) Families() []schema.LogicTable {
	out := make([]schema.LogicTable, 0, len(r.tables))
	for _, table := range r.tables {
		out = append(out, table.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FamilyID < out[j].FamilyID })
	return out
}

// normalizeLabel folds a category label for case- and punctuation-insensitive
// lookup: "Chip Resistor", "chip_resistor" and "chip-resistor" all collide.
func normalizeLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
