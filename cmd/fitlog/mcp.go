// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and is read-only.

CONFIGURATION:

  {
    "mcpServers": {
      "fitlog": { "command": "fitlog", "args": ["mcp"] }
    }
  }

AVAILABLE TOOLS:

  list_exercises       List or search exercises
  get_prs              All-time personal records
  check_pr             Check a candidate weight against the record
  get_weight_progress  Per-day max weight for an exercise
  get_stats            Whole-history summary
  get_cardio_stats     Cardio totals for a type and window
  export_data          Backup snapshot as JSON or YAML, or a Markdown log

AVAILABLE RESOURCES:

  fitlog://stats   Training summary
  fitlog://prs     Personal records`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(db)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
