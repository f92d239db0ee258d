package database

import (
	"context"
	"database/sql"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/markschellhas/chic/internal/schema"
	"github.com/markschellhas/chic/pkg/config"
)

// Introspector reads table and column metadata for one dialect.
type Introspector interface {
	Tables(ctx context.Context) ([]string, error)
	Columns(ctx context.Context, table string) ([]schema.ColumnDescriptor, error)
}

// Filter narrows the set of introspected tables. An empty Include keeps every table.
type Filter struct {
	Include []string
	Exclude []string
}

func (f Filter) keep(table string) bool {
	if len(f.Include) > 0 && !contains(f.Include, table) {
		return false
	}
	return !contains(f.Exclude, table)
}

type Connector struct {
	db      *sql.DB
	dialect config.Dialect
	log     *zap.Logger
}

func NewConnector(ctx context.Context, cfg config.DBConfig, log *zap.Logger) (*Connector, error) {
	if log == nil {
		log = zap.NewNop()
	}

	driver, dsn, err := DataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, &ConnectionError{Dialect: cfg.Dialect, Err: err}
	}

	log.Debug("pinging database", zap.String("dialect", string(cfg.Dialect)), zap.String("database", cfg.Database))
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &ConnectionError{Dialect: cfg.Dialect, Err: err}
	}

	return &Connector{
		db:      db,
		dialect: cfg.Dialect,
		log:     log,
	}, nil
}

func (c *Connector) Close() error {
	return c.db.Close()
}

func (c *Connector) Introspector() Introspector {
	switch c.dialect {
	case config.DialectMySQL:
		return NewMySQLIntrospector(c.db)
	case config.DialectPostgres:
		return NewPostgreSQLIntrospector(c.db)
	default:
		return NewSQLiteIntrospector(c.db)
	}
}

func (c *Connector) ExtractSchema(ctx context.Context, filter Filter) (*schema.Snapshot, error) {
	return Extract(ctx, c.dialect, c.Introspector(), filter, c.log)
}

// Extract builds a snapshot from in. Any failure aborts the whole pass.
func Extract(ctx context.Context, dialect config.Dialect, in Introspector, filter Filter, log *zap.Logger) (*schema.Snapshot, error) {
	if log == nil {
		log = zap.NewNop()
	}

	names, err := in.Tables(ctx)
	if err != nil {
		return nil, &IntrospectionError{Err: err}
	}

	snap := &schema.Snapshot{
		Dialect:     string(dialect),
		Tables:      make([]schema.TableSchema, 0, len(names)),
		GeneratedAt: time.Now(),
	}
	for _, name := range names {
		if isInternalTable(name) || !filter.keep(name) {
			log.Debug("skipping table", zap.String("table", name))
			continue
		}

		columns, err := in.Columns(ctx, name)
		if err != nil {
			return nil, &IntrospectionError{Table: name, Err: err}
		}
		log.Debug("introspected table", zap.String("table", name), zap.Int("columns", len(columns)))
		snap.Tables = append(snap.Tables, schema.TableSchema{Name: name, Columns: columns})
	}
	return snap, nil
}

// Introspect connects with cfg, reads the schema and closes the connection.
// The dialect is checked before any I/O happens.
func Introspect(ctx context.Context, cfg config.DBConfig, filter Filter, log *zap.Logger) (*schema.Snapshot, error) {
	if !cfg.Dialect.Supported() {
		return nil, &UnsupportedDialectError{Dialect: string(cfg.Dialect)}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := NewConnector(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return conn.ExtractSchema(ctx, filter)
}

// DataSource returns the database/sql driver name and DSN for cfg.
func DataSource(cfg config.DBConfig) (driver, dsn string, err error) {
	switch cfg.Dialect {
	case config.DialectSQLite:
		return "sqlite3", sqliteURI(cfg.Database), nil

	case config.DialectMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(hostOrDefault(cfg.Host), strconv.Itoa(portOrDefault(cfg)))
		mc.DBName = cfg.Database
		if cfg.Timeout > 0 {
			mc.Timeout = cfg.Timeout
		}
		return "mysql", mc.FormatDSN(), nil

	case config.DialectPostgres:
		u := url.URL{
			Scheme: "postgres",
			Host:   net.JoinHostPort(hostOrDefault(cfg.Host), strconv.Itoa(portOrDefault(cfg))),
			Path:   "/" + cfg.Database,
		}
		if cfg.User != "" {
			if cfg.Password != "" {
				u.User = url.UserPassword(cfg.User, cfg.Password)
			} else {
				u.User = url.User(cfg.User)
			}
		}
		q := url.Values{}
		sslmode := cfg.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		q.Set("sslmode", sslmode)
		if cfg.Timeout > 0 {
			q.Set("connect_timeout", strconv.Itoa(int(cfg.Timeout.Seconds())))
		}
		u.RawQuery = q.Encode()
		return "postgres", u.String(), nil
	}
	return "", "", &UnsupportedDialectError{Dialect: string(cfg.Dialect)}
}

// sqliteURI opens path read-only. SQLite percent-decodes URI paths, so every
// segment is escaped and names containing '?' or '#' survive.
func sqliteURI(path string) string {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return "file:" + strings.Join(segments, "/") + "?mode=ro"
}

func hostOrDefault(host string) string {
	if host == "" {
		return "localhost"
	}
	return host
}

func portOrDefault(cfg config.DBConfig) int {
	if cfg.Port == 0 {
		return cfg.Dialect.DefaultPort()
	}
	return cfg.Port
}

func isInternalTable(name string) bool {
	return strings.HasPrefix(strings.ToLower(name), "sqlite_")
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
