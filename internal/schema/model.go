package schema

import (
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
)

// ModelName derives a model identifier from a table name:
// snake_case becomes PascalCase and the last word is singularized.
func ModelName(table string) string {
	return inflection.Singular(ToPascalCase(table))
}

// ToPascalCase converts snake_case, kebab-case or space separated words to
// PascalCase. Each word is capitalized and the rest of it lowercased, so
// USERS and BLOG_POSTS become Users and BlogPosts.
func ToPascalCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})

	var b strings.Builder
	for _, word := range words {
		runes := []rune(word)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(strings.ToLower(string(runes[1:])))
	}
	return b.String()
}

// DeriveModelSpec builds the generator input for a single introspected table.
func (tm *TypeMapper) DeriveModelSpec(table TableSchema) ModelSpec {
	spec := ModelSpec{
		ModelName: ModelName(table.Name),
		TableName: table.Name,
		Fields:    make([]Field, 0, len(table.Columns)),
	}
	for _, col := range table.Columns {
		spec.Fields = append(spec.Fields, tm.Field(col))
	}
	return spec
}
