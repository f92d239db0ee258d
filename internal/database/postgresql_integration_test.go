package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/markschellhas/chic/pkg/config"
)

func TestPostgreSQL_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	if !isDockerAvailable() {
		t.Skip("docker not available, skipping integration test")
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("blog"),
		postgres.WithUsername("chic"),
		postgres.WithPassword("chic"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2*time.Minute)),
	)
	require.NoError(t, err)
	defer container.Terminate(ctx)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		CREATE TABLE posts (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			body TEXT,
			published BOOLEAN DEFAULT false
		);
		CREATE TABLE comments (
			id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			post_id INTEGER NOT NULL REFERENCES posts(id)
		);
		CREATE VIEW recent_posts AS SELECT * FROM posts;
	`)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	snap, err := Introspect(ctx, config.DBConfig{
		Dialect:  config.DialectPostgres,
		Database: "blog",
		Host:     host,
		Port:     port.Int(),
		User:     "chic",
		Password: "chic",
	}, Filter{}, nil)
	require.NoError(t, err)
	require.Len(t, snap.Tables, 2, "views are not introspected")

	comments, posts := snap.Tables[0], snap.Tables[1]
	assert.Equal(t, "comments", comments.Name)
	assert.True(t, comments.Columns[0].IsAutoIncrement)

	assert.Equal(t, "posts", posts.Name)
	require.Len(t, posts.Columns, 4)
	assert.True(t, posts.Columns[0].IsPrimaryKey)
	assert.True(t, posts.Columns[0].IsAutoIncrement)
	assert.Equal(t, "character varying", posts.Columns[1].NativeType)
	assert.True(t, posts.Columns[1].IsNotNull)
	assert.Equal(t, "boolean", posts.Columns[3].NativeType)
}

func isDockerAvailable() (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	provider, err := testcontainers.NewDockerProvider()
	if err != nil {
		return false
	}
	defer provider.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return provider.Health(ctx) == nil
}
