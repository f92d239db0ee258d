package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

var ErrNotInProject = errors.New("not in a SvelteKit project (no package.json found)")

// FindProjectRoot walks up from start to the first directory containing package.json.
func FindProjectRoot(fsys afero.Fs, start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if _, err := fsys.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: searched upwards from %s", ErrNotInProject, start)
		}
		dir = parent
	}
}

// ConfigNotFoundError reports a missing database configuration file or environment.
type ConfigNotFoundError struct {
	Path string
	Env  string
}

func (e *ConfigNotFoundError) Error() string {
	if e.Env != "" {
		return fmt.Sprintf("no %q environment in database configuration %s", e.Env, e.Path)
	}
	return fmt.Sprintf("database configuration not found at %s (run `chic init` first)", e.Path)
}
