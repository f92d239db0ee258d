package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/markschellhas/chic/internal/schema"
)

type SQLiteIntrospector struct {
	db *sql.DB
}

func NewSQLiteIntrospector(db *sql.DB) *SQLiteIntrospector {
	return &SQLiteIntrospector{db: db}
}

func (s *SQLiteIntrospector) Tables(ctx context.Context) ([]string, error) {
	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

func (s *SQLiteIntrospector) Columns(ctx context.Context, table string) ([]schema.ColumnDescriptor, error) {
	query := `
		SELECT name, type, "notnull", dflt_value, pk
		FROM pragma_table_info(?)
		ORDER BY cid
	`

	rows, err := s.db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		columns []schema.ColumnDescriptor
		pkCount int
		pkIndex = -1
	)
	for rows.Next() {
		var (
			col       schema.ColumnDescriptor
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&col.Field, &col.NativeType, &notNull, &dfltValue, &pk); err != nil {
			return nil, err
		}

		col.IsNotNull = notNull == 1
		col.IsPrimaryKey = pk > 0
		if dfltValue.Valid {
			col.DefaultValue = &dfltValue.String
		}
		if col.IsPrimaryKey {
			pkCount++
			pkIndex = len(columns)
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// A single INTEGER PRIMARY KEY column aliases the rowid and is assigned automatically.
	if pkCount == 1 && strings.EqualFold(strings.TrimSpace(columns[pkIndex].NativeType), "INTEGER") {
		columns[pkIndex].IsAutoIncrement = true
	}
	return columns, nil
}
