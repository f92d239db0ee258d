package manifest

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	m, err := Load(afero.NewMemMapFs(), "/app")
	require.NoError(t, err)
	assert.Empty(t, m.Models)
	assert.NotNil(t, m.Routes)
}

func TestLoad_Invalid(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/chic.json", []byte("{"), 0644))

	_, err := Load(fsys, "/app")
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/app/chic.json", []byte(`{
		"models": [],
		"components": [{"name": "Nav"}],
		"routes": null
	}`), 0644))

	m, err := Load(fsys, "/app")
	require.NoError(t, err)

	m.PutModel(Model{Name: "Post", Table: "posts", Fields: []Field{{Name: "title", Type: "string"}}})
	added := m.AddRoutes(
		Route{Method: "GET", Path: "/api/posts", Description: "Lists posts", Action: "listPosts"},
		Route{Method: "POST", Path: "/api/posts", Description: "Creates a new post", Action: "createPost"},
	)
	assert.Equal(t, 2, added)
	require.NoError(t, m.Save(fsys, "/app"))

	data, err := afero.ReadFile(fsys, "/app/chic.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"models": [{"name": "Post", "table": "posts", "fields": [{"name": "title", "type": "string"}]}],
		"components": [{"name": "Nav"}],
		"routes": [
			{"method": "GET", "path": "/api/posts", "description": "Lists posts", "action": "listPosts"},
			{"method": "POST", "path": "/api/posts", "description": "Creates a new post", "action": "createPost"}
		]
	}`, string(data))
}

func TestAddRoutes_Dedupes(t *testing.T) {
	m := New()

	assert.Equal(t, 1, m.AddRoutes(Route{Method: "GET", Path: "/posts"}))
	assert.Equal(t, 1, m.AddRoutes(Route{Method: "GET", Path: "/posts"}, Route{Method: "POST", Path: "/posts"}))
	assert.Len(t, m.Routes, 2)
}

func TestPutModel_Replaces(t *testing.T) {
	m := New()
	m.PutModel(Model{Name: "Post"})
	m.PutModel(Model{Name: "Post", Fields: []Field{{Name: "title", Type: "string"}}})

	require.Len(t, m.Models, 1)
	assert.True(t, m.HasModel("Post"))
	assert.False(t, m.HasModel("Comment"))
	assert.Len(t, m.Models[0].Fields, 1)
	assert.NotNil(t, m.Models[0].Fields)
}
