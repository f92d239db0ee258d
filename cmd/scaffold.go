package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/markschellhas/chic/internal/database"
	"github.com/markschellhas/chic/internal/scaffold"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate resources from an existing source",
}

var scaffoldDBCmd = &cobra.Command{
	Use:   "db",
	Short: "Generate a resource for every table of the project's database",
	Long: `Reads src/lib/db/database_config.json, introspects the configured database
and generates a model, controller, form, pages and API routes for every table.
The schema is also written to src/lib/models/tables.json.`,
	Args: cobra.NoArgs,
	RunE: runScaffoldDB,
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.AddCommand(scaffoldDBCmd)

	addDatabaseFlags(scaffoldDBCmd)
	scaffoldDBCmd.Flags().Bool("fail-fast", false, "stop at the first table that fails to generate")
}

// addDatabaseFlags registers the flags shared by every command that connects to the database.
func addDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("env", "e", "", "environment in database_config.json (default: the file's env entry)")
	cmd.Flags().Duration("timeout", 0, "connect and query timeout (default 30s)")
	cmd.Flags().StringSliceP("only", "i", []string{}, "only include these tables")
	cmd.Flags().StringSliceP("exclude", "x", []string{}, "tables to exclude")
}

func scaffoldOptions(cmd *cobra.Command, report scaffold.Reporter) scaffold.Options {
	opts := scaffold.Options{
		Root:     cfg.Root,
		Env:      cfg.Database.Env,
		Timeout:  cfg.Database.Timeout,
		FailFast: cfg.Scaffold.FailFast,
		Reporter: report,
	}

	flags := cmd.Flags()
	if flags.Changed("env") {
		opts.Env, _ = flags.GetString("env")
	}
	if flags.Changed("timeout") {
		opts.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Lookup("fail-fast") != nil && flags.Changed("fail-fast") {
		opts.FailFast, _ = flags.GetBool("fail-fast")
	}
	return opts
}

func databaseSource(cmd *cobra.Command) database.Source {
	only, _ := cmd.Flags().GetStringSlice("only")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	return database.Source{
		Filter: database.Filter{Include: only, Exclude: exclude},
		Log:    logger,
	}
}

func runScaffoldDB(cmd *cobra.Command, args []string) error {
	out := printer(cmd.OutOrStdout())
	start := time.Now()

	s := scaffold.New(appFs, databaseSource(cmd), scaffoldOptions(cmd, out), logger)
	sum, err := s.ScaffoldFromDatabase(cmd.Context())
	if sum == nil {
		return err
	}

	out.Section("\nScaffolded %d of %d tables from %s in %s", len(sum.Models), len(sum.Tables), sum.Dialect, time.Since(start).Round(time.Millisecond))
	if len(sum.Models) > 0 {
		out.Info("Models: %s", joinNames(sum.Models))
	}
	return err
}
