package scaffold

import (
	"fmt"

	"github.com/markschellhas/chic/internal/database"
	"github.com/markschellhas/chic/internal/fsutil"
	"github.com/markschellhas/chic/internal/generators"
	"github.com/markschellhas/chic/internal/manifest"
	"github.com/markschellhas/chic/pkg/config"
)

// Init prepares a SvelteKit project for chic: it writes chic.json, the
// database configuration for env and db.js. Only the database configuration
// is replaced when force is set; chic.json and db.js hold generated models
// and are never overwritten.
func (s *Scaffolder) Init(env string, cfg config.DBConfig, force bool) (*Summary, error) {
	root, err := config.FindProjectRoot(s.fs, s.opts.Root)
	if err != nil {
		return nil, err
	}
	cfg.Dialect = config.ParseDialect(string(cfg.Dialect))
	if !cfg.Dialect.Supported() {
		return nil, &database.UnsupportedDialectError{Dialect: string(cfg.Dialect)}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sum := &Summary{Root: root, Dialect: string(cfg.Dialect)}

	exists, err := fsutil.Exists(s.fs, manifest.Path(root))
	if err != nil {
		return nil, err
	}
	if exists {
		s.skipped(sum, manifest.FileName, "already exists")
	} else {
		if err := manifest.New().Save(s.fs, root); err != nil {
			return sum, err
		}
		s.created(sum, manifest.FileName)
	}

	rel := generators.DBDir + "/database_config.json"
	exists, err = fsutil.Exists(s.fs, config.DBConfigPath(root))
	if err != nil {
		return sum, err
	}
	if exists && !force {
		s.skipped(sum, rel, "already exists")
	} else {
		if _, err := config.WriteDBConfig(s.fs, root, env, cfg); err != nil {
			return sum, err
		}
		s.created(sum, rel)
	}

	gen, err := generators.New(s.fs, root)
	if err != nil {
		return sum, err
	}
	created, err := gen.EnsureRegistrationFile(string(cfg.Dialect))
	if err != nil {
		return sum, err
	}
	if created {
		s.created(sum, generators.RegistrationPath)
	} else {
		s.skipped(sum, generators.RegistrationPath, "already exists")
	}

	if err := s.fs.MkdirAll(gen.Abs(generators.ModelsDir), 0755); err != nil {
		return sum, fmt.Errorf("failed to create %s: %w", generators.ModelsDir, err)
	}
	return sum, nil
}
