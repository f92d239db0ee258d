package schema

import (
	"fmt"
	"strings"
)

// ParseFieldSpec parses a space separated list of name:type pairs,
// e.g. "title:string body:text".
func ParseFieldSpec(spec string) ([]Field, error) {
	var fields []Field
	seen := make(map[string]bool)

	for _, token := range strings.Fields(spec) {
		name, typ, ok := strings.Cut(token, ":")
		if !ok || name == "" || typ == "" {
			return nil, fmt.Errorf("invalid field %q: expected name:type", token)
		}

		internal := InternalType(strings.ToLower(typ))
		if !internal.Valid() {
			return nil, fmt.Errorf("invalid field %q: unknown type %q", token, typ)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate field %q", name)
		}
		seen[name] = true

		fields = append(fields, Field{
			Name:        name,
			Type:        internal,
			StorageType: internal.DefaultStorage(),
		})
	}
	return fields, nil
}

// FormatFieldSpec is the inverse of ParseFieldSpec.
func FormatFieldSpec(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Name+":"+string(f.Type))
	}
	return strings.Join(parts, " ")
}
