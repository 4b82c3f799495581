// Package mcp provides a Model Context Protocol server for microlog.
// It exposes journal operations as MCP tools that any MCP-capable agent
// can use to capture and read entries.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anguspiv/micro-journal/internal/journal"
)

// NewServer creates an MCP server with all microlog tools registered.
func NewServer(version string, store *journal.Store) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "microlog",
		Version: version,
	}, nil)
	registerTools(server, store)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for append-only write tools.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all microlog tools to the server.
func registerTools(server *mcp.Server, store *journal.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add",
		Description: "Record a journal entry. Content is required; media paths and tags are optional.",
		Annotations: writeAnnotations(),
	}, handleAdd(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "Retrieve journal entries by date (today, yesterday, or YYYY-MM-DD), recency count, or trailing days, optionally filtered by tags.",
		Annotations: readOnlyAnnotations(),
	}, handleList(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export",
		Description: "Render entries in a date range as markdown, obsidian, text, or json.",
		Annotations: readOnlyAnnotations(),
	}, handleExport(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "consolidate",
		Description: "Merge all entries for one date into a single ordered daily document and render it.",
		Annotations: readOnlyAnnotations(),
	}, handleConsolidate(store))
}
