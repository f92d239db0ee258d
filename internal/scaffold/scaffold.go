// Package scaffold turns a database schema, or a hand-written field list,
// into a complete set of SvelteKit resource files.
package scaffold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jinzhu/inflection"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/markschellhas/chic/internal/fsutil"
	"github.com/markschellhas/chic/internal/generators"
	"github.com/markschellhas/chic/internal/manifest"
	"github.com/markschellhas/chic/internal/schema"
	"github.com/markschellhas/chic/pkg/config"
)

type Options struct {
	// Root is where the search for package.json starts.
	Root     string
	Env      string
	Timeout  time.Duration
	FailFast bool
	Reporter Reporter
}

type Failure struct {
	Table string
	Err   error
}

// Summary lists what a run did. File paths are relative to the project root.
type Summary struct {
	Root     string
	Dialect  string
	Tables   []string
	Models   []string
	Files    []string
	Skipped  []string
	Failures []Failure
}

type Scaffolder struct {
	fs     afero.Fs
	source SchemaSource
	types  *schema.TypeMapper
	log    *zap.Logger
	report Reporter
	opts   Options
}

func New(fsys afero.Fs, source SchemaSource, opts Options, log *zap.Logger) *Scaffolder {
	if log == nil {
		log = zap.NewNop()
	}
	report := opts.Reporter
	if report == nil {
		report = nopReporter{}
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	return &Scaffolder{
		fs:     fsys,
		source: source,
		types:  schema.NewTypeMapper(log),
		log:    log,
		report: report,
		opts:   opts,
	}
}

func (s *Scaffolder) created(sum *Summary, file string) {
	sum.Files = append(sum.Files, file)
	s.report.Created(file)
}

func (s *Scaffolder) skipped(sum *Summary, file, reason string) {
	sum.Skipped = append(sum.Skipped, file)
	s.report.Skipped(file, reason)
}

// DatabaseConfig locates the project and loads its database configuration.
// A relative SQLite path is resolved against the project root.
func (s *Scaffolder) DatabaseConfig() (string, *config.DBConfig, error) {
	root, err := config.FindProjectRoot(s.fs, s.opts.Root)
	if err != nil {
		return "", nil, err
	}

	cfg, err := config.LoadDBConfig(s.fs, root, s.opts.Env)
	if err != nil {
		return "", nil, err
	}
	if s.opts.Timeout > 0 {
		cfg.Timeout = s.opts.Timeout
	}
	if cfg.Dialect == config.DialectSQLite && !filepath.IsAbs(cfg.Database) && !strings.HasPrefix(cfg.Database, ":memory:") {
		cfg.Database = filepath.Join(root, cfg.Database)
	}
	return root, cfg, nil
}

// Snapshot introspects the configured database without writing anything.
func (s *Scaffolder) Snapshot(ctx context.Context) (*schema.Snapshot, error) {
	_, cfg, err := s.DatabaseConfig()
	if err != nil {
		return nil, err
	}
	return s.source.Introspect(ctx, *cfg)
}

// ScaffoldFromDatabase generates a resource for every table of the configured
// database. Table failures are collected unless FailFast is set; a failed
// introspection always aborts the run.
func (s *Scaffolder) ScaffoldFromDatabase(ctx context.Context) (*Summary, error) {
	root, cfg, err := s.DatabaseConfig()
	if err != nil {
		return nil, err
	}
	sum := &Summary{Root: root, Dialect: string(cfg.Dialect)}

	for _, dir := range []string{generators.ModelsDir, generators.DBDir} {
		if err := s.fs.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755); err != nil {
			return sum, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	s.log.Info("introspecting database", zap.String("dialect", string(cfg.Dialect)), zap.String("database", cfg.Database))
	snap, err := s.source.Introspect(ctx, *cfg)
	if err != nil {
		return sum, fmt.Errorf("failed to introspect database: %w", err)
	}
	for _, table := range snap.Tables {
		sum.Tables = append(sum.Tables, table.Name)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return sum, fmt.Errorf("failed to encode schema snapshot: %w", err)
	}
	snapshotPath := filepath.Join(root, filepath.FromSlash(generators.SnapshotPath))
	if err := fsutil.WriteFileAtomic(s.fs, snapshotPath, append(data, '\n'), 0644); err != nil {
		return sum, &generators.FileWriteError{Path: generators.SnapshotPath, Err: err}
	}
	s.created(sum, generators.SnapshotPath)

	gen, m, err := s.prepare(root, string(cfg.Dialect), sum)
	if err != nil {
		return sum, err
	}

	// model name -> table it was generated from in this run
	taken := make(map[string]string, len(snap.Tables))
	for _, table := range snap.Tables {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		spec := s.types.DeriveModelSpec(table)
		s.log.Debug("scaffolding table",
			zap.String("table", table.Name),
			zap.String("model", spec.ModelName),
			zap.String("fields", schema.FormatFieldSpec(spec.Fields)))

		err := claimModelName(taken, spec)
		if err == nil {
			err = s.generateResource(gen, m, spec, sum)
		}
		if err != nil {
			sum.Failures = append(sum.Failures, Failure{Table: table.Name, Err: err})
			s.report.Failed(table.Name, err)
			s.log.Error("failed to scaffold table", zap.String("table", table.Name), zap.Error(err))
			if s.opts.FailFast {
				return sum, &GenerationError{Failures: sum.Failures}
			}
			continue
		}
		sum.Models = append(sum.Models, spec.ModelName)
	}

	if len(sum.Models) > 0 {
		if err := s.destroyButton(gen, sum); err != nil {
			sum.Failures = append(sum.Failures, Failure{Err: err})
		}
	}

	if len(sum.Failures) > 0 {
		return sum, &GenerationError{Failures: sum.Failures}
	}
	return sum, nil
}

// Make scaffolds a single resource from a field list such as
// "title:string body:text".
func (s *Scaffolder) Make(resource, fieldSpec string) (*Summary, error) {
	fields, err := schema.ParseFieldSpec(fieldSpec)
	if err != nil {
		return nil, err
	}
	names := generators.ResourceNames(resource)
	if !generators.IsIdentifier(names.Model) {
		return nil, fmt.Errorf("invalid resource name %q", resource)
	}

	root, err := config.FindProjectRoot(s.fs, s.opts.Root)
	if err != nil {
		return nil, err
	}

	dialect := string(config.DialectSQLite)
	cfg, err := config.LoadDBConfig(s.fs, root, s.opts.Env)
	var notFound *config.ConfigNotFoundError
	switch {
	case err == nil:
		dialect = string(cfg.Dialect)
	case errors.As(err, &notFound):
		s.log.Warn("no database configuration, assuming sqlite", zap.String("path", notFound.Path))
	default:
		return nil, err
	}

	sum := &Summary{Root: root, Dialect: dialect}
	gen, m, err := s.prepare(root, dialect, sum)
	if err != nil {
		return sum, err
	}

	table := inflection.Plural(strings.ToLower(resource))
	spec := schema.ModelSpec{ModelName: names.Model, TableName: table, Fields: fields}
	if err := s.generateResource(gen, m, spec, sum); err != nil {
		sum.Failures = append(sum.Failures, Failure{Table: table, Err: err})
		return sum, &GenerationError{Failures: sum.Failures}
	}
	sum.Tables = append(sum.Tables, table)
	sum.Models = append(sum.Models, spec.ModelName)

	if err := s.destroyButton(gen, sum); err != nil {
		return sum, err
	}
	return sum, nil
}

// prepare builds the generator, loads the manifest and makes sure db.js exists.
func (s *Scaffolder) prepare(root, dialect string, sum *Summary) (*generators.Generator, *manifest.Manifest, error) {
	gen, err := generators.New(s.fs, root)
	if err != nil {
		return nil, nil, err
	}

	m, err := manifest.Load(s.fs, root)
	if err != nil {
		return nil, nil, err
	}

	created, err := gen.EnsureRegistrationFile(dialect)
	if err != nil {
		return nil, nil, err
	}
	if created {
		s.created(sum, generators.RegistrationPath)
	}
	return gen, m, nil
}

// claimModelName reserves spec's model name for its table. Two tables that
// derive the same model would write the same files.
func claimModelName(taken map[string]string, spec schema.ModelSpec) error {
	if !generators.IsIdentifier(spec.ModelName) {
		return &ModelNameError{Table: spec.TableName, Model: spec.ModelName}
	}
	if other, ok := taken[spec.ModelName]; ok {
		return &ModelNameError{Table: spec.TableName, Model: spec.ModelName, Conflict: other}
	}
	taken[spec.ModelName] = spec.TableName
	return nil
}

// generateResource writes every file of one model, registers it in db.js and
// records it in the manifest. The manifest is saved after each model so an
// aborted run keeps what it finished.
func (s *Scaffolder) generateResource(gen *generators.Generator, m *manifest.Manifest, spec schema.ModelSpec, sum *Summary) error {
	names := generators.NewNames(spec.ModelName)
	if m.HasModel(spec.ModelName) {
		s.log.Info("regenerating existing model", zap.String("model", spec.ModelName))
	}

	file, err := gen.Model(spec)
	if err != nil {
		return err
	}
	s.created(sum, file)

	changed, err := gen.Register(names)
	if err != nil {
		return err
	}
	if changed {
		s.report.Updated(generators.RegistrationPath)
	} else {
		s.skipped(sum, generators.RegistrationPath, spec.ModelName+" already registered")
	}

	if file, err = gen.Controller(spec); err != nil {
		return err
	}
	s.created(sum, file)

	if file, err = gen.Form(spec); err != nil {
		return err
	}
	s.created(sum, file)

	files, err := gen.Pages(spec)
	if err != nil {
		return err
	}
	for _, f := range files {
		s.created(sum, f)
	}

	if files, err = gen.APIRoutes(spec); err != nil {
		return err
	}
	for _, f := range files {
		s.created(sum, f)
	}

	fields := make([]manifest.Field, 0, len(spec.Fields))
	for _, f := range spec.FormFields() {
		fields = append(fields, manifest.Field{Name: f.Name, Type: string(f.Type)})
	}
	m.PutModel(manifest.Model{Name: spec.ModelName, Table: spec.TableName, Fields: fields})
	m.AddRoutes(generators.Routes(names)...)
	return m.Save(s.fs, gen.Root())
}

func (s *Scaffolder) destroyButton(gen *generators.Generator, sum *Summary) error {
	file, err := gen.DestroyButton()
	if err != nil {
		s.report.Failed(generators.DestroyButtonPath, err)
		return err
	}
	s.created(sum, file)
	return nil
}
