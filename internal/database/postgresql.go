package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/markschellhas/chic/internal/schema"
)

type PostgreSQLIntrospector struct {
	db *sql.DB
}

func NewPostgreSQLIntrospector(db *sql.DB) *PostgreSQLIntrospector {
	return &PostgreSQLIntrospector{db: db}
}

func (p *PostgreSQLIntrospector) Tables(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := p.db.QueryContext(ctx, query)
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

func (p *PostgreSQLIntrospector) Columns(ctx context.Context, table string) ([]schema.ColumnDescriptor, error) {
	query := `
		SELECT
			c.column_name,
			c.data_type,
			c.is_nullable = 'NO' AS not_null,
			c.column_default,
			EXISTS (
				SELECT 1
				FROM information_schema.table_constraints tc
				JOIN information_schema.key_column_usage kcu
					ON tc.constraint_name = kcu.constraint_name
					AND tc.table_schema = kcu.table_schema
				WHERE tc.constraint_type = 'PRIMARY KEY'
					AND tc.table_schema = c.table_schema
					AND tc.table_name = c.table_name
					AND kcu.column_name = c.column_name
			) AS is_primary_key,
			c.is_identity = 'YES' AS is_identity
		FROM information_schema.columns c
		WHERE c.table_schema = 'public' AND c.table_name = $1
		ORDER BY c.ordinal_position
	`

	rows, err := p.db.QueryContext(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.ColumnDescriptor
	for rows.Next() {
		var (
			col        schema.ColumnDescriptor
			dflt       sql.NullString
			isIdentity bool
		)
		if err := rows.Scan(&col.Field, &col.NativeType, &col.IsNotNull, &dflt, &col.IsPrimaryKey, &isIdentity); err != nil {
			return nil, err
		}

		if dflt.Valid {
			col.DefaultValue = &dflt.String
		}
		col.IsAutoIncrement = isIdentity || (dflt.Valid && strings.HasPrefix(dflt.String, "nextval("))
		columns = append(columns, col)
	}
	return columns, rows.Err()
}
