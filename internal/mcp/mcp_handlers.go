package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/altsource/altsource/core"
	"github.com/altsource/altsource/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	tables   TableCatalog
	provider contract.PartProvider
}

// getStringMap extracts an object argument as a string map. Non-string values
// are stringified so numeric answers round-trip cleanly.
func getStringMap(request mcp.CallToolRequest, key string) map[string]string {
	raw, ok := request.GetArguments()[key].(map[string]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

func (h *toolHandler) handleFindSubstitutes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sourceMPN := request.GetString("source_mpn", "")
	if sourceMPN == "" {
		return mcp.NewToolResultError("source_mpn is required"), nil
	}

	cfg := h.baseCfg.Clone()
	req := &core.MatchRequest{
		SourceMPN: sourceMPN,
		Category:  request.GetString("category", ""),
		Answers:   getStringMap(request, "answers"),
		Overrides: getStringMap(request, "overrides"),
		Limit:     request.GetInt("limit", 0),
	}

	report, err := core.FindSubstitutes(ctx, h.tables, h.provider, cfg, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("matching failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleExplainMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sourceMPN := request.GetString("source_mpn", "")
	if sourceMPN == "" {
		return mcp.NewToolResultError("source_mpn is required"), nil
	}
	candidateMPN := request.GetString("candidate_mpn", "")
	if candidateMPN == "" {
		return mcp.NewToolResultError("candidate_mpn is required"), nil
	}

	cfg := h.baseCfg.Clone()
	req := &core.MatchRequest{
		SourceMPN: sourceMPN,
		Category:  request.GetString("category", ""),
		Answers:   getStringMap(request, "answers"),
	}

	report, err := core.ExplainMatch(ctx, h.tables, h.provider, cfg, req, candidateMPN)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListFamilies(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type familySummary struct {
		FamilyID    string `json:"family_id"`
		FamilyName  string `json:"family_name"`
		Category    string `json:"category"`
		RuleCount   int    `json:"rule_count"`
		Description string `json:"description,omitempty"`
	}

	tables := h.tables.Families()
	summaries := make([]familySummary, len(tables))
	for i := range tables {
		t := &tables[i]
		summaries[i] = familySummary{
			FamilyID:    t.FamilyID,
			FamilyName:  t.FamilyName,
			Category:    t.Category,
			RuleCount:   len(t.Rules),
			Description: t.Description,
		}
	}

	jsonData, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetContextQuestions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	familyID := request.GetString("family_id", "")
	if familyID == "" {
		return mcp.NewToolResultError("family_id is required"), nil
	}

	config, ok := h.tables.ContextConfig(familyID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no qualifying questions registered for family %s", familyID)), nil
	}

	jsonData, _ := json.MarshalIndent(config, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleClassifyPart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mpn := request.GetString("mpn", "")
	if mpn == "" {
		return mcp.NewToolResultError("mpn is required"), nil
	}

	part, err := h.provider.GetPart(ctx, mpn)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch part %s: %v", mpn, err)), nil
	}

	category := request.GetString("category", "")
	if category == "" {
		category = part.Part.Category
	}
	baseTable, err := h.tables.TableForCategory(category)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	enriched := core.EnrichAttributes(baseTable.FamilyID, &part, h.tables.Enrichers())
	familyID := core.ClassifyFamily(baseTable.FamilyID, &enriched, h.tables.ClassifierRules())

	table := baseTable
	if familyID != baseTable.FamilyID {
		if t, err := h.tables.Table(familyID); err == nil {
			table = t
		}
	}

	result := map[string]any{
		"mpn":            part.Part.MPN,
		"category":       category,
		"base_family_id": baseTable.FamilyID,
		"family_id":      table.FamilyID,
		"family_name":    table.FamilyName,
	}
	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
