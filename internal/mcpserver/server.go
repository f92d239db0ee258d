// Package mcpserver exposes introspection and scaffolding as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/markschellhas/chic/internal/database"
	"github.com/markschellhas/chic/internal/scaffold"
)

// Server builds scaffolders for tool calls. Each call may name its own
// project root and table filter.
type Server struct {
	fs      afero.Fs
	root    string
	version string
	log     *zap.Logger
	// newSource is replaced in tests.
	newSource func(filter database.Filter) scaffold.SchemaSource
}

func New(fsys afero.Fs, root, version string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		fs:      fsys,
		root:    root,
		version: version,
		log:     log,
		newSource: func(filter database.Filter) scaffold.SchemaSource {
			return database.Source{Filter: filter, Log: log}
		},
	}
}

// MCPServer registers the tools on a new MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	srv := server.NewMCPServer(
		"chic",
		s.version,
		server.WithToolCapabilities(false),
	)

	introspectTool := mcp.NewTool("introspect_schema",
		mcp.WithDescription("Read the tables and columns of the project's configured database and return them as tables.json"),
		mcp.WithString("root",
			mcp.Description("Project directory, or any directory below it (default: server working directory)"),
		),
		mcp.WithString("env",
			mcp.Description("Environment in database_config.json (default: the file's env entry)"),
		),
		mcp.WithString("tables",
			mcp.Description("Comma separated list of tables to include"),
		),
	)
	srv.AddTool(introspectTool, s.handleIntrospect)

	scaffoldTool := mcp.NewTool("scaffold_from_database",
		mcp.WithDescription("Generate models, controllers, forms, pages and API routes for every table of the project's database"),
		mcp.WithString("root",
			mcp.Description("Project directory, or any directory below it (default: server working directory)"),
		),
		mcp.WithString("env",
			mcp.Description("Environment in database_config.json (default: the file's env entry)"),
		),
		mcp.WithString("tables",
			mcp.Description("Comma separated list of tables to include"),
		),
		mcp.WithBoolean("fail_fast",
			mcp.Description("Stop at the first table that fails to generate"),
		),
	)
	srv.AddTool(scaffoldTool, s.handleScaffold)

	return srv
}

// Serve blocks serving MCP requests on stdin/stdout.
func (s *Server) Serve() error {
	s.log.Info("starting chic mcp server")
	return server.ServeStdio(s.MCPServer())
}

func (s *Server) scaffolder(request mcp.CallToolRequest) *scaffold.Scaffolder {
	filter := database.Filter{Include: splitList(request.GetString("tables", ""))}
	opts := scaffold.Options{
		Root:     request.GetString("root", s.root),
		Env:      request.GetString("env", ""),
		FailFast: request.GetBool("fail_fast", false),
	}
	return scaffold.New(s.fs, s.newSource(filter), opts, s.log)
}

func (s *Server) handleIntrospect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.scaffolder(request).Snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleScaffold(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	sum, err := s.scaffolder(request).ScaffoldFromDatabase(ctx)
	if sum == nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := formatSummary(sum, time.Since(start))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s\n\n%v", text, err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func formatSummary(sum *scaffold.Summary, elapsed time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scaffolded %d of %d tables (%s) in %s\n", len(sum.Models), len(sum.Tables), sum.Dialect, elapsed.Round(time.Millisecond))
	if len(sum.Models) > 0 {
		fmt.Fprintf(&b, "\nmodels: %s\n", strings.Join(sum.Models, ", "))
	}
	if len(sum.Files) > 0 {
		b.WriteString("\nfiles:\n")
		for _, f := range sum.Files {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	for _, f := range sum.Failures {
		fmt.Fprintf(&b, "\nfailed %s: %v", f.Table, f.Err)
	}
	return b.String()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
