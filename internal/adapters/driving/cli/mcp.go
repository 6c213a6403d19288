package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tunesearch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes two tools:
  search_catalog   - search the catalog and return sorted, formatted results
  recent_searches  - list past searches, newest first

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default)
  tunesearch mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  tunesearch mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "tunesearch": {
        "command": "/path/to/tunesearch",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer(cmd)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

func newMCPServer(cmd *cobra.Command) (*mcp.Server, error) {
	svc, err := requireServices(cmd)
	if err != nil {
		return nil, err
	}

	// Tool callers only use returned values, so signals are discarded.
	ports := &mcp.Ports{
		Search:   svc.NewController(nil),
		History:  svc.History,
		Settings: svc.Settings,
	}
	return mcp.NewServer(ports)
}
