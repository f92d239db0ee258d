package cmd

import (
	"github.com/spf13/cobra"

	"github.com/markschellhas/chic/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve introspection and scaffolding as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mcpserver.New(appFs, cfg.Root, version, logger).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
