package cmd

import (
	"github.com/spf13/cobra"

	"github.com/markschellhas/chic/internal/manifest"
	"github.com/markschellhas/chic/internal/ui"
	"github.com/markschellhas/chic/pkg/config"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes recorded in chic.json",
	Args:  cobra.NoArgs,
	RunE:  runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	root, err := config.FindProjectRoot(appFs, cfg.Root)
	if err != nil {
		return err
	}
	m, err := manifest.Load(appFs, root)
	if err != nil {
		return err
	}

	out := printer(cmd.OutOrStdout())
	if len(m.Routes) == 0 {
		out.Info("No routes yet. Run `chic scaffold db` or `chic make` first.")
		return nil
	}

	table := ui.NewTable(cmd.OutOrStdout(), cfg.NoColor, "METHOD", "PATH", "ACTION", "DESCRIPTION")
	for _, r := range m.Routes {
		table.AddRow(r.Method, r.Path, r.Action, r.Description)
	}
	table.Render()
	return nil
}
