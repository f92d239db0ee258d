package generators

import (
	"fmt"
	"strings"

	"github.com/markschellhas/chic/internal/schema"
)

type DiagramFormat string

const (
	FormatMermaid  DiagramFormat = "mermaid"
	FormatPlantUML DiagramFormat = "plantuml"
	FormatGraphviz DiagramFormat = "graphviz"
)

var DiagramFormats = []DiagramFormat{FormatMermaid, FormatPlantUML, FormatGraphviz}

// Diagram renders the snapshot as an entity diagram. Each entity is labelled
// with the model name it scaffolds to.
func Diagram(format DiagramFormat, s *schema.Snapshot) (string, error) {
	switch format {
	case FormatMermaid:
		return GenerateMermaid(s), nil
	case FormatPlantUML:
		return GeneratePlantUML(s), nil
	case FormatGraphviz:
		return GenerateGraphviz(s), nil
	}
	return "", fmt.Errorf("invalid format %q (valid formats: mermaid, plantuml, graphviz)", format)
}

func GenerateMermaid(s *schema.Snapshot) string {
	var builder strings.Builder

	builder.WriteString("erDiagram\n")
	for _, table := range s.Tables {
		builder.WriteString(fmt.Sprintf("    %s[\"%s\"] {\n", cleanName(table.Name), schema.ModelName(table.Name)))
		for _, col := range table.Columns {
			key := ""
			if col.IsPrimaryKey {
				key = " PK"
			}
			builder.WriteString(fmt.Sprintf("        %s %s%s\n", mermaidType(col.NativeType), cleanName(col.Field), key))
		}
		builder.WriteString("    }\n")
	}
	return builder.String()
}

func GeneratePlantUML(s *schema.Snapshot) string {
	var builder strings.Builder

	builder.WriteString("@startuml\n")
	builder.WriteString("!theme plain\n")
	builder.WriteString("skinparam linetype ortho\n\n")

	for _, table := range s.Tables {
		builder.WriteString(fmt.Sprintf("entity \"%s\" as %s <<%s>> {\n", table.Name, cleanName(table.Name), schema.ModelName(table.Name)))
		for _, col := range table.Columns {
			if col.IsPrimaryKey {
				builder.WriteString(fmt.Sprintf("  * %s : %s <<PK>>\n", col.Field, displayType(col.NativeType)))
			}
		}
		builder.WriteString("  --\n")
		for _, col := range table.Columns {
			if col.IsPrimaryKey {
				continue
			}
			notNull := ""
			if col.IsNotNull {
				notNull = " <<NOT NULL>>"
			}
			builder.WriteString(fmt.Sprintf("  %s : %s%s\n", col.Field, displayType(col.NativeType), notNull))
		}
		builder.WriteString("}\n\n")
	}

	builder.WriteString("@enduml\n")
	return builder.String()
}

func GenerateGraphviz(s *schema.Snapshot) string {
	var builder strings.Builder

	builder.WriteString("digraph schema {\n")
	builder.WriteString("  rankdir=TB;\n")
	builder.WriteString("  node [shape=record, style=filled, fillcolor=lightblue];\n\n")

	for _, table := range s.Tables {
		var fields []string
		for _, col := range table.Columns {
			field := col.Field + ": " + displayType(col.NativeType)
			if col.IsPrimaryKey {
				field = "+" + field
			}
			if col.IsNotNull {
				field += " NOT NULL"
			}
			fields = append(fields, escapeRecord(field))
		}
		builder.WriteString(fmt.Sprintf("  %s [label=\"{%s (%s)|%s\\l}\"];\n",
			cleanName(table.Name),
			escapeRecord(table.Name),
			schema.ModelName(table.Name),
			strings.Join(fields, "\\l")))
	}

	builder.WriteString("}\n")
	return builder.String()
}

func displayType(native string) string {
	if strings.TrimSpace(native) == "" {
		return "ANY"
	}
	return strings.ToUpper(native)
}

// mermaidType squeezes a native type into a single mermaid token.
func mermaidType(native string) string {
	t := strings.ToLower(strings.TrimSpace(native))
	if t == "" {
		return "any"
	}
	return strings.NewReplacer(" ", "_", ",", "_", "(", "_", ")", "").Replace(t)
}

func cleanName(name string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name)
}

func escapeRecord(s string) string {
	return strings.NewReplacer("{", "\\{", "}", "\\}", "|", "\\|", "<", "\\<", ">", "\\>", "\"", "\\\"").Replace(s)
}
