package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markschellhas/chic/internal/schema"
)

func diagramSnapshot() *schema.Snapshot {
	return &schema.Snapshot{
		Dialect: "sqlite",
		Tables: []schema.TableSchema{{
			Name: "blog_posts",
			Columns: []schema.ColumnDescriptor{
				{Field: "id", NativeType: "INTEGER", IsPrimaryKey: true, IsAutoIncrement: true, IsNotNull: true},
				{Field: "title", NativeType: "VARCHAR(255)", IsNotNull: true},
				{Field: "notes", NativeType: ""},
			},
		}},
	}
}

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(diagramSnapshot())

	assert.Equal(t, `erDiagram
    blog_posts["BlogPost"] {
        integer id PK
        varchar_255 title
        any notes
    }
`, out)
}

func TestGeneratePlantUML(t *testing.T) {
	out := GeneratePlantUML(diagramSnapshot())

	assert.Contains(t, out, "@startuml\n")
	assert.Contains(t, out, `entity "blog_posts" as blog_posts <<BlogPost>> {`)
	assert.Contains(t, out, "  * id : INTEGER <<PK>>\n  --\n")
	assert.Contains(t, out, "  title : VARCHAR(255) <<NOT NULL>>\n")
	assert.Contains(t, out, "  notes : ANY\n")
	assert.Contains(t, out, "@enduml\n")
}

func TestGenerateGraphviz(t *testing.T) {
	out := GenerateGraphviz(diagramSnapshot())

	assert.Contains(t, out, "digraph schema {\n")
	assert.Contains(t, out, `  blog_posts [label="{blog_posts (BlogPost)|+id: INTEGER NOT NULL\ltitle: VARCHAR(255) NOT NULL\lnotes: ANY\l}"];`)
}

func TestDiagram(t *testing.T) {
	for _, format := range DiagramFormats {
		out, err := Diagram(format, diagramSnapshot())
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	}

	_, err := Diagram("svg", diagramSnapshot())
	assert.ErrorContains(t, err, `invalid format "svg"`)
}

func TestDiagram_EmptySnapshot(t *testing.T) {
	assert.Equal(t, "erDiagram\n", GenerateMermaid(&schema.Snapshot{}))
}
