package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/markschellhas/chic/internal/fsutil"
	"github.com/markschellhas/chic/internal/generators"
	"github.com/markschellhas/chic/internal/scaffold"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the schema of the project's database",
	Long: `Introspects the configured database and prints the schema, either in the
tables.json format or as an entity diagram.

Examples:
  chic schema
  chic schema -f mermaid -o schema.md
  chic schema -f graphviz --only posts,comments`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

var schemaExtensions = map[string]string{
	"json":     ".json",
	"mermaid":  ".md",
	"plantuml": ".puml",
	"graphviz": ".dot",
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	addDatabaseFlags(schemaCmd)
	schemaCmd.Flags().StringP("format", "f", "json", "output format: json, mermaid, plantuml, graphviz")
	schemaCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
}

func runSchema(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if _, ok := schemaExtensions[format]; !ok {
		return fmt.Errorf("invalid format '%s'. Valid formats: json, mermaid, plantuml, graphviz", format)
	}

	s := scaffold.New(appFs, databaseSource(cmd), scaffoldOptions(cmd, nil), logger)
	snap, err := s.Snapshot(cmd.Context())
	if err != nil {
		return err
	}

	var content string
	if format == "json" {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}
		content = string(data) + "\n"
	} else {
		content, err = generators.Diagram(generators.DiagramFormat(format), snap)
		if err != nil {
			return err
		}
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	if filepath.Ext(output) == "" {
		output += schemaExtensions[format]
	}
	if err := fsutil.WriteFileAtomic(appFs, output, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	out := printer(cmd.ErrOrStderr())
	out.Created(output)
	out.Info("Format: %s", format)
	out.Info("Tables: %d", len(snap.Tables))
	return nil
}
