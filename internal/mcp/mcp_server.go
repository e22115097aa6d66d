// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/altsource/altsource/core"
	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// TableCatalog is what the server needs from the rule registry: everything
// the core pipeline uses, plus the full family listing.
type TableCatalog interface {
	core.TableSource
	Families() []schema.LogicTable
}

// NewMCPServer initializes and configures the Altsource MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, tables TableCatalog, provider contract.PartProvider) *server.MCPServer {
	s := server.NewMCPServer(
		"Altsource Matching Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		tables:   tables,
		provider: provider,
	}

	// --- 1. Tool: find_substitutes ---
	s.AddTool(mcp.NewTool("find_substitutes",
		mcp.WithDescription("Find ranked substitute candidates for an electronic component by manufacturer part number."),
		mcp.WithString("source_mpn", mcp.Description("Manufacturer part number of the part to replace."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Category label override when the catalog's own category is wrong or missing.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of candidates returned.")),
		mcp.WithObject("answers", mcp.Description("Context question answers keyed by question id (see get_context_questions).")),
		mcp.WithObject("overrides", mcp.Description("Attribute value overrides keyed by attribute id.")),
	), h.handleFindSubstitutes)

	// --- 2. Tool: explain_match ---
	s.AddTool(mcp.NewTool("explain_match",
		mcp.WithDescription("Evaluate one specific candidate against a source part and explain every rule verdict."),
		mcp.WithString("source_mpn", mcp.Description("Manufacturer part number of the part to replace."), mcp.Required()),
		mcp.WithString("candidate_mpn", mcp.Description("Manufacturer part number of the proposed substitute."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Category label override.")),
		mcp.WithObject("answers", mcp.Description("Context question answers keyed by question id.")),
	), h.handleExplainMatch)

	// --- 3. Tool: list_families ---
	s.AddTool(mcp.NewTool("list_families",
		mcp.WithDescription("List the registered component families and their rule counts."),
	), h.handleListFamilies)

	// --- 4. Tool: get_context_questions ---
	s.AddTool(mcp.NewTool("get_context_questions",
		mcp.WithDescription("Get the qualifying questions for a component family. Answers tighten the matching rules."),
		mcp.WithString("family_id", mcp.Description("Family id, e.g. chip_resistor (see list_families)."), mcp.Required()),
	), h.handleGetContextQuestions)

	// --- 5. Tool: classify_part ---
	s.AddTool(mcp.NewTool("classify_part",
		mcp.WithDescription("Resolve a part to its component family, including sub-family classification."),
		mcp.WithString("mpn", mcp.Description("Manufacturer part number to classify."), mcp.Required()),
		mcp.WithString("category", mcp.Description("Category label override.")),
	), h.handleClassifyPart)

	return s
}

// StartMCPServer starts the Altsource MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, tables TableCatalog, provider contract.PartProvider) error {
	s := NewMCPServer(baseCfg, tables, provider)
	return server.ServeStdio(s)
}
