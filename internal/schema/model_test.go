package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelName(t *testing.T) {
	tests := map[string]string{
		"posts":       "Post",
		"blog_posts":  "BlogPost",
		"categories":  "Category",
		"people":      "Person",
		"user-events": "UserEvent",
		"Post":        "Post",
		"USERS":       "User",
		"BLOG_POSTS":  "BlogPost",
		"blogPosts":   "Blogpost",
	}
	for table, want := range tests {
		t.Run(table, func(t *testing.T) {
			assert.Equal(t, want, ModelName(table))
		})
	}
}

func TestDeriveModelSpec_Posts(t *testing.T) {
	tm := NewTypeMapper(nil)
	spec := tm.DeriveModelSpec(TableSchema{
		Name: "posts",
		Columns: []ColumnDescriptor{
			{Field: "id", NativeType: "INTEGER", IsPrimaryKey: true, IsAutoIncrement: true},
			{Field: "title", NativeType: "VARCHAR(255)"},
			{Field: "body", NativeType: "TEXT"},
		},
	})

	assert.Equal(t, "Post", spec.ModelName)
	assert.Equal(t, "posts", spec.TableName)
	require.Len(t, spec.Fields, 3)
	assert.Equal(t, Field{Name: "id", Type: TypeNumber, StorageType: StorageInteger, PrimaryKey: true, AutoIncrement: true}, spec.Fields[0])
	assert.Equal(t, Field{Name: "title", Type: TypeString, StorageType: StorageString}, spec.Fields[1])
	assert.Equal(t, Field{Name: "body", Type: TypeText, StorageType: StorageText}, spec.Fields[2])
	assert.Equal(t, "id:number title:string body:text", FormatFieldSpec(spec.Fields))
	assert.Equal(t, "id", spec.DisplayField())

	form := spec.FormFields()
	require.Len(t, form, 2)
	assert.Equal(t, "title", form[0].Name)
}

func TestDeriveModelSpec_NoColumns(t *testing.T) {
	tm := NewTypeMapper(nil)
	spec := tm.DeriveModelSpec(TableSchema{Name: "audit_marks"})

	assert.Equal(t, "AuditMark", spec.ModelName)
	assert.Empty(t, spec.Fields)
	assert.Empty(t, spec.FormFields())
	assert.Equal(t, "id", spec.DisplayField())
	assert.Equal(t, "", FormatFieldSpec(spec.Fields))
}
