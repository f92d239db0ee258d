package database

import (
	"context"

	"go.uber.org/zap"

	"github.com/markschellhas/chic/internal/schema"
	"github.com/markschellhas/chic/pkg/config"
)

// Source introspects live databases for the scaffolder.
type Source struct {
	Filter Filter
	Log    *zap.Logger
}

func (s Source) Introspect(ctx context.Context, cfg config.DBConfig) (*schema.Snapshot, error) {
	return Introspect(ctx, cfg, s.Filter, s.Log)
}
