package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/markschellhas/chic/internal/schema"
)

type MySQLIntrospector struct {
	db *sql.DB
}

func NewMySQLIntrospector(db *sql.DB) *MySQLIntrospector {
	return &MySQLIntrospector{db: db}
}

func (m *MySQLIntrospector) Tables(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, "SHOW TABLES")
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

func (m *MySQLIntrospector) Columns(ctx context.Context, table string) ([]schema.ColumnDescriptor, error) {
	rows, err := m.db.QueryContext(ctx, "SHOW COLUMNS FROM "+quoteMySQLIdentifier(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.ColumnDescriptor
	for rows.Next() {
		var (
			col       schema.ColumnDescriptor
			null, key string
			dflt      sql.NullString
			extra     string
		)
		if err := rows.Scan(&col.Field, &col.NativeType, &null, &key, &dflt, &extra); err != nil {
			return nil, err
		}

		col.IsNotNull = strings.EqualFold(null, "NO")
		col.IsPrimaryKey = strings.EqualFold(key, "PRI")
		col.IsAutoIncrement = strings.Contains(strings.ToLower(extra), "auto_increment")
		if dflt.Valid {
			col.DefaultValue = &dflt.String
		}
		columns = append(columns, col)
	}
	return columns, rows.Err()
}

func quoteMySQLIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
