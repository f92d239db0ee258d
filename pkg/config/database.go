package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/markschellhas/chic/internal/fsutil"
)

// DBConfigFile is the relative location of the database configuration inside a project.
var DBConfigFile = filepath.Join("src", "lib", "db", "database_config.json")

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
)

var dialectAliases = map[string]Dialect{
	"sqlite3":    DialectSQLite,
	"postgresql": DialectPostgres,
}

// ParseDialect normalizes a dialect name. Unknown names are returned as-is so
// the introspector can reject them with a descriptive error.
func ParseDialect(s string) Dialect {
	name := strings.ToLower(strings.TrimSpace(s))
	if d, ok := dialectAliases[name]; ok {
		return d
	}
	return Dialect(name)
}

var Dialects = []Dialect{DialectSQLite, DialectMySQL, DialectPostgres}

func (d Dialect) Supported() bool {
	for _, known := range Dialects {
		if d == known {
			return true
		}
	}
	return false
}

func (d Dialect) DefaultPort() int {
	switch d {
	case DialectMySQL:
		return 3306
	case DialectPostgres:
		return 5432
	}
	return 0
}

// DBConfig holds the connection parameters of one environment.
type DBConfig struct {
	Dialect  Dialect       `mapstructure:"dialect" json:"dialect" validate:"required"`
	Database string        `mapstructure:"database" json:"database" validate:"required"`
	Host     string        `mapstructure:"host" json:"host,omitempty"`
	Port     int           `mapstructure:"port" json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	User     string        `mapstructure:"user" json:"user,omitempty"`
	Password string        `mapstructure:"password" json:"password,omitempty"`
	SSLMode  string        `mapstructure:"sslmode" json:"sslmode,omitempty" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	Timeout  time.Duration `mapstructure:"timeout" json:"-"`
}

// DBConfigDocument is the whole database_config.json document.
type DBConfigDocument struct {
	Env string              `mapstructure:"env" json:"env"`
	DB  map[string]DBConfig `mapstructure:"db" json:"db"`
}

var validate = validator.New()

func DBConfigPath(root string) string {
	return filepath.Join(root, DBConfigFile)
}

func (c *DBConfig) applyDefaults() {
	c.Dialect = ParseDialect(string(c.Dialect))
	if c.Dialect == DialectSQLite {
		return
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = c.Dialect.DefaultPort()
	}
}

func (c *DBConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}
	return nil
}

// LoadDBConfig reads the configuration of env from the project at root. An
// empty env selects the document's own "env" entry, then "development".
func LoadDBConfig(fsys afero.Fs, root, env string) (*DBConfig, error) {
	path := DBConfigPath(root)
	if _, err := fsys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read database config: %w", err)
	}

	var doc DBConfigDocument
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal database config: %w", err)
	}

	if env == "" {
		env = doc.Env
	}
	if env == "" {
		env = DefaultEnv
	}

	cfg, ok := doc.DB[strings.ToLower(env)]
	if !ok {
		return nil, &ConfigNotFoundError{Path: path, Env: env}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteDBConfig stores cfg as the only environment of the project's database configuration.
func WriteDBConfig(fsys afero.Fs, root, env string, cfg DBConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if env == "" {
		env = DefaultEnv
	}

	doc := DBConfigDocument{Env: env, DB: map[string]DBConfig{env: cfg}}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode database config: %w", err)
	}

	path := DBConfigPath(root)
	if err := fsutil.WriteFileAtomic(fsys, path, append(data, '\n'), 0644); err != nil {
		return "", err
	}
	return path, nil
}
