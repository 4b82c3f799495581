// Package main provides the entry point for the microlog CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/anguspiv/micro-journal/internal/config"
	"github.com/anguspiv/micro-journal/internal/journal"
	micrologmcp "github.com/anguspiv/micro-journal/internal/mcp"
	"github.com/anguspiv/micro-journal/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run microlog as a Model Context Protocol (MCP) server over stdio.

This exposes journal operations as MCP tools that any MCP-capable agent
environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "microlog": {
        "command": "microlog",
        "args": ["serve"]
      }
    }
  }

Available tools: add, list, export, consolidate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return output.NewSystemErrorWithCause("loading configuration", err)
			}
			loc, err := settings.Location()
			if err != nil {
				return output.NewUserError(err.Error())
			}

			store := journal.NewStore(settings.ResolveDataDir(), loc)
			server := micrologmcp.NewServer(buildVersion(), store)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
