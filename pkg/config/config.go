package config

import "time"

// Config is the tool configuration, read from .chic.yaml, CHIC_* environment
// variables and command line flags.
type Config struct {
	Root     string         `mapstructure:"root"`
	LogLevel string         `mapstructure:"log_level"`
	NoColor  bool           `mapstructure:"no_color"`
	Database DatabaseConfig `mapstructure:"database"`
	Scaffold ScaffoldConfig `mapstructure:"scaffold"`
}

type DatabaseConfig struct {
	Env     string        `mapstructure:"env"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ScaffoldConfig struct {
	FailFast bool `mapstructure:"fail_fast"`
}

const (
	DefaultLogLevel = "warn"
	DefaultEnv      = "development"
	DefaultTimeout  = 30 * time.Second
)
