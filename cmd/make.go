package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/markschellhas/chic/internal/scaffold"
)

var makeCmd = &cobra.Command{
	Use:   "make <resource> <field:type>...",
	Short: "Generate a resource from a field list",
	Long: `Generates a model, controller, form, pages and API routes for a resource and
registers the model in src/lib/db/db.js.

Field types: string, text, number, date, boolean, file.

Example:
  chic make posts title:string body:text published:boolean`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMake,
}

func init() {
	rootCmd.AddCommand(makeCmd)
	makeCmd.Flags().StringP("env", "e", "", "environment in database_config.json used to pick the db.js template")
}

func runMake(cmd *cobra.Command, args []string) error {
	out := printer(cmd.OutOrStdout())

	opts := scaffold.Options{Root: cfg.Root, Env: cfg.Database.Env, Reporter: out}
	if cmd.Flags().Changed("env") {
		opts.Env, _ = cmd.Flags().GetString("env")
	}

	sum, err := scaffold.New(appFs, nil, opts, logger).Make(args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	out.Section("\nCreated resource %s", joinNames(sum.Models))
	return nil
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
