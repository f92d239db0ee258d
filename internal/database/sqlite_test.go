package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markschellhas/chic/internal/schema"
	"github.com/markschellhas/chic/pkg/config"
)

func createSQLiteDB(t *testing.T, statements ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.sqlite")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range statements {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
	return path
}

func TestSQLite_Introspect(t *testing.T) {
	path := createSQLiteDB(t,
		`CREATE TABLE posts (id INTEGER PRIMARY KEY, title VARCHAR(255), body TEXT)`,
		`CREATE TABLE comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_id INTEGER NOT NULL,
			approved BOOLEAN DEFAULT 0,
			created_at DATETIME
		)`,
		`CREATE TABLE tags (post_id INTEGER, name TEXT, PRIMARY KEY (post_id, name))`,
		`INSERT INTO comments (post_id) VALUES (1)`,
	)

	snap, err := Introspect(context.Background(), config.DBConfig{Dialect: config.DialectSQLite, Database: path}, Filter{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", snap.Dialect)

	var names []string
	for _, table := range snap.Tables {
		names = append(names, table.Name)
	}
	assert.Equal(t, []string{"posts", "comments", "tags"}, names, "sqlite_sequence must be excluded")

	posts := snap.Tables[0]
	require.Len(t, posts.Columns, 3)
	assert.Equal(t, schema.ColumnDescriptor{Field: "id", NativeType: "INTEGER", IsPrimaryKey: true, IsAutoIncrement: true}, posts.Columns[0])
	assert.Equal(t, schema.ColumnDescriptor{Field: "title", NativeType: "VARCHAR(255)"}, posts.Columns[1])
	assert.Equal(t, schema.ColumnDescriptor{Field: "body", NativeType: "TEXT"}, posts.Columns[2])

	comments := snap.Tables[1]
	require.Len(t, comments.Columns, 4)
	assert.True(t, comments.Columns[0].IsAutoIncrement)
	assert.True(t, comments.Columns[1].IsNotNull)
	require.NotNil(t, comments.Columns[2].DefaultValue)
	assert.Equal(t, "0", *comments.Columns[2].DefaultValue)

	tags := snap.Tables[2]
	require.Len(t, tags.Columns, 2)
	assert.True(t, tags.Columns[0].IsPrimaryKey)
	assert.True(t, tags.Columns[1].IsPrimaryKey)
	assert.False(t, tags.Columns[0].IsAutoIncrement, "composite keys are not auto-increment")
}

func TestSQLite_PathWithURICharacters(t *testing.T) {
	created := createSQLiteDB(t, `CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)`)
	path := filepath.Join(filepath.Dir(created), "my notes #1?.sqlite")
	require.NoError(t, os.Rename(created, path))

	snap, err := Introspect(context.Background(), config.DBConfig{Dialect: config.DialectSQLite, Database: path}, Filter{}, nil)
	require.NoError(t, err)
	require.Len(t, snap.Tables, 1)
	assert.Equal(t, "notes", snap.Tables[0].Name)
}

func TestSQLite_PostsBecomePostModel(t *testing.T) {
	path := createSQLiteDB(t, `CREATE TABLE posts (id INTEGER PRIMARY KEY, title VARCHAR(255), body TEXT)`)

	snap, err := Introspect(context.Background(), config.DBConfig{Dialect: config.DialectSQLite, Database: path}, Filter{}, nil)
	require.NoError(t, err)
	require.Len(t, snap.Tables, 1)

	spec := schema.NewTypeMapper(nil).DeriveModelSpec(snap.Tables[0])
	assert.Equal(t, "Post", spec.ModelName)
	assert.Equal(t, "id:number title:string body:text", schema.FormatFieldSpec(spec.Fields))
	assert.True(t, spec.Fields[0].PrimaryKey)
	assert.True(t, spec.Fields[0].AutoIncrement)
}

func TestSQLite_Filter(t *testing.T) {
	path := createSQLiteDB(t,
		`CREATE TABLE posts (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE users (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE sessions (id INTEGER PRIMARY KEY)`,
	)
	cfg := config.DBConfig{Dialect: config.DialectSQLite, Database: path}

	snap, err := Introspect(context.Background(), cfg, Filter{Exclude: []string{"sessions"}}, nil)
	require.NoError(t, err)
	require.Len(t, snap.Tables, 2)
	assert.Equal(t, "users", snap.Tables[1].Name)

	snap, err = Introspect(context.Background(), cfg, Filter{Include: []string{"USERS"}}, nil)
	require.NoError(t, err)
	require.Len(t, snap.Tables, 1)
	assert.Equal(t, "users", snap.Tables[0].Name)
}

func TestSQLite_EmptyDatabase(t *testing.T) {
	path := createSQLiteDB(t, `CREATE TABLE scratch (id INTEGER)`, `DROP TABLE scratch`)

	snap, err := Introspect(context.Background(), config.DBConfig{Dialect: config.DialectSQLite, Database: path}, Filter{}, nil)
	require.NoError(t, err)
	assert.Empty(t, snap.Tables)
}

func TestSQLite_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sqlite")

	_, err := Introspect(context.Background(), config.DBConfig{Dialect: config.DialectSQLite, Database: path}, Filter{}, nil)
	require.Error(t, err)

	var connErr *ConnectionError
	assert.True(t, errors.As(err, &connErr))
	assert.DirExists(t, filepath.Dir(path))
	assert.NoFileExists(t, path, "read-only mode must not create the database")
}
