package scaffold

import (
	"context"

	"github.com/markschellhas/chic/internal/schema"
	"github.com/markschellhas/chic/pkg/config"
)

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// SchemaSource produces a schema snapshot for a database configuration.
type SchemaSource interface {
	// Introspect connects to the database described by cfg and reads every user table
	Introspect(ctx context.Context, cfg config.DBConfig) (*schema.Snapshot, error)
}

// Reporter receives progress events for generated files.
type Reporter interface {
	Created(path string)
	Updated(path string)
	Skipped(path, reason string)
	Failed(subject string, err error)
}

type nopReporter struct{}

func (nopReporter) Created(string)         {}
func (nopReporter) Updated(string)         {}
func (nopReporter) Skipped(string, string) {}
func (nopReporter) Failed(string, error)   {}
