package database

import (
	"fmt"

	"github.com/markschellhas/chic/pkg/config"
)

type UnsupportedDialectError struct {
	Dialect string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("unsupported database dialect %q (supported: sqlite, mysql, postgres)", e.Dialect)
}

type ConnectionError struct {
	Dialect config.Dialect
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s database: %v", e.Dialect, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// IntrospectionError is returned when a metadata query fails. Table is empty
// when listing the tables failed.
type IntrospectionError struct {
	Table string
	Err   error
}

func (e *IntrospectionError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("failed to list tables: %v", e.Err)
	}
	return fmt.Sprintf("failed to introspect table %s: %v", e.Table, e.Err)
}

func (e *IntrospectionError) Unwrap() error { return e.Err }
