package core

import (
	"context"
	"fmt"
	"time"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
	"github.com/google/uuid"
)

// TableSource supplies logic tables, classifier rules and context configs.
// The registry implements it; tests supply small fakes.
type TableSource interface {
	// Table returns the canonical table for a family id.
	Table(familyID string) (schema.LogicTable, error)

	// TableForCategory resolves a free-text category label to a family table.
	TableForCategory(label string) (schema.LogicTable, error)

	// ContextConfig returns the family's qualifying questions, if any.
	ContextConfig(familyID string) (*schema.FamilyContextConfig, bool)

	// ClassifierRules returns the ordered sub-family classifier rules.
	ClassifierRules() []ClassifierRule

	// Enrichers returns the attribute enrichment steps.
	Enrichers() []Enricher
}

// MatchRequest describes one substitution search.
type MatchRequest struct {
	SourceMPN string
	Category  string            // optional category label overriding the part's own
	Overrides map[string]string // user-supplied attribute overrides, by attribute id
	Answers   map[string]string // context question answers, by question id
	Limit     int               // 0 means use the configured result limit
}

// prepareEvaluation resolves the effective table and enriched source for a
// request: category lookup, enrichment, sub-family classification, attribute
// overrides and context escalation.
func prepareEvaluation(tables TableSource, source schema.PartAttributes, req *MatchRequest) (schema.PartAttributes, schema.LogicTable, error) {
	category := req.Category
	if category == "" {
		category = source.Part.Category
	}
	baseTable, err := tables.TableForCategory(category)
	if err != nil {
		return schema.PartAttributes{}, schema.LogicTable{}, err
	}

	// Enrichment runs before classification so classifier rules can rely on
	// derived attributes the vendor data omits.
	enriched := EnrichAttributes(baseTable.FamilyID, &source, tables.Enrichers())

	familyID := ClassifyFamily(baseTable.FamilyID, &enriched, tables.ClassifierRules())
	table := baseTable
	if familyID != baseTable.FamilyID {
		if t, err := tables.Table(familyID); err == nil {
			table = t
		}
	}

	applyOverrides(&enriched, &table, req.Overrides)

	if len(req.Answers) > 0 {
		if config, ok := tables.ContextConfig(table.FamilyID); ok {
			appCtx := &schema.ApplicationContext{FamilyID: table.FamilyID, Answers: req.Answers}
			table = ApplyContext(&table, appCtx, config)
		}
	}
	return enriched, table, nil
}

// FindSubstitutes runs the full pipeline for one source part: fetch, enrich,
// classify, escalate by context, evaluate every candidate in parallel and
// rank. The report always explains every candidate, including rejected ones.
func FindSubstitutes(ctx context.Context, tables TableSource, provider contract.PartProvider, cfg *contract.Config, req *MatchRequest) (*schema.MatchReport, error) {
	source, err := provider.GetPart(ctx, req.SourceMPN)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source part %s: %w", req.SourceMPN, err)
	}

	enriched, table, err := prepareEvaluation(tables, source, req)
	if err != nil {
		return nil, err
	}

	candidates, err := provider.FindCandidates(ctx, &enriched, cfg.CandidateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates for %s: %w", req.SourceMPN, err)
	}

	policy := ScorePolicy{ReviewCredit: cfg.ReviewCredit}
	evals := EvaluateAll(&table, &enriched, candidates, cfg.Workers, policy)

	limit := req.Limit
	if limit <= 0 {
		limit = cfg.ResultLimit
	}

	return &schema.MatchReport{
		ReportID:    uuid.NewString(),
		FamilyID:    table.FamilyID,
		FamilyName:  table.FamilyName,
		Source:      enriched,
		Candidates:  RankCandidates(evals, limit),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// ExplainMatch evaluates a single named candidate against the source with
// the same pipeline as FindSubstitutes, for one-on-one comparison.
func ExplainMatch(ctx context.Context, tables TableSource, provider contract.PartProvider, cfg *contract.Config, req *MatchRequest, candidateMPN string) (*schema.MatchReport, error) {
	source, err := provider.GetPart(ctx, req.SourceMPN)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch source part %s: %w", req.SourceMPN, err)
	}
	candidate, err := provider.GetPart(ctx, candidateMPN)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate part %s: %w", candidateMPN, err)
	}

	enriched, table, err := prepareEvaluation(tables, source, req)
	if err != nil {
		return nil, err
	}

	policy := ScorePolicy{ReviewCredit: cfg.ReviewCredit}
	eval := Evaluate(&table, &enriched, &candidate, policy)

	return &schema.MatchReport{
		ReportID:    uuid.NewString(),
		FamilyID:    table.FamilyID,
		FamilyName:  table.FamilyName,
		Source:      enriched,
		Candidates:  []schema.CandidateEvaluation{eval},
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// applyOverrides merges user-supplied attribute overrides into the source
// part. An override replaces an existing attribute's raw value, or appends a
// new attribute using the matching rule's display name as a label of last
// resort.
func applyOverrides(source *schema.PartAttributes, table *schema.LogicTable, overrides map[string]string) {
	for id, value := range overrides {
		displayName := id
		if rule := table.RuleByID(id); rule != nil {
			displayName = rule.DisplayName
		}
		source.SetAttribute(id, displayName, value)
	}
}
