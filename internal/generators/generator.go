package generators

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/afero"

	"github.com/markschellhas/chic/internal/fsutil"
	"github.com/markschellhas/chic/internal/schema"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Generator renders project files from the embedded templates and writes
// them below root.
type Generator struct {
	fs   afero.Fs
	root string
	tmpl *template.Template
}

func New(fsys afero.Fs, root string) (*Generator, error) {
	tmpl, err := template.New("chic").Funcs(templateFuncs()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Generator{fs: fsys, root: root, tmpl: tmpl}, nil
}

func (g *Generator) Root() string {
	return g.root
}

// Abs resolves a project-relative path.
func (g *Generator) Abs(rel string) string {
	return filepath.Join(g.root, filepath.FromSlash(rel))
}

func (g *Generator) render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// write replaces the project-relative file rel with content and returns rel.
func (g *Generator) write(rel string, content []byte) (string, error) {
	if err := fsutil.WriteFileAtomic(g.fs, g.Abs(rel), content, 0644); err != nil {
		return "", &FileWriteError{Path: rel, Err: err}
	}
	return rel, nil
}

func (g *Generator) renderFile(rel, tmpl string, data any) (string, error) {
	content, err := g.render(tmpl, data)
	if err != nil {
		return "", err
	}
	return g.write(rel, content)
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"jsKey":            jsKey,
		"jsAccess":         jsAccess,
		"fieldOptions":     fieldOptions,
		"jsDocType":        jsDocType,
		"label":            label,
		"input":            input,
		"hasFileField":     hasFileField,
		"importLine":       ModelRegistration.ImportLine,
		"registrationLine": ModelRegistration.RegistrationLine,
		"exportLine":       exportLine,
	}
}

var jsIdentifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// IsIdentifier reports whether name can be used as a JavaScript identifier.
// Reserved words are not checked; model names are PascalCase and never collide.
func IsIdentifier(name string) bool {
	return jsIdentifier.MatchString(name)
}

var jsQuote = strings.NewReplacer(`\`, `\\`, "'", `\'`)

func jsKey(name string) string {
	if IsIdentifier(name) {
		return name
	}
	return "'" + jsQuote.Replace(name) + "'"
}

// jsAccess renders a member access, falling back to bracket notation for
// names such as "first-name".
func jsAccess(object, name string) string {
	if IsIdentifier(name) {
		return object + "." + name
	}
	return object + "[" + jsKey(name) + "]"
}

func fieldOptions(f schema.Field) string {
	opts := []string{"type: DataTypes." + string(f.StorageType)}
	if f.PrimaryKey {
		opts = append(opts, "primaryKey: true")
	}
	if f.AutoIncrement {
		opts = append(opts, "autoIncrement: true")
	}
	if f.NotNull && !f.PrimaryKey {
		opts = append(opts, "allowNull: false")
	}
	return "{ " + strings.Join(opts, ", ") + " }"
}

func jsDocType(t schema.InternalType) string {
	switch t {
	case schema.TypeNumber:
		return "{number}"
	case schema.TypeBoolean:
		return "{boolean}"
	case schema.TypeFile:
		return "{any}"
	default:
		return "{string}"
	}
}

func label(name string) string {
	words := strings.Fields(strings.NewReplacer("_", " ", "-", " ").Replace(name))
	if len(words) == 0 {
		return name
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}

func input(f schema.Field) string {
	attrs := fmt.Sprintf(`id="%[1]s" name="%[1]s"`, f.Name)
	value := jsAccess("data", f.Name)
	bind := fmt.Sprintf("bind:value={%s}", value)

	switch f.Type {
	case schema.TypeText:
		return fmt.Sprintf("<textarea %s %s />", attrs, bind)
	case schema.TypeNumber:
		return fmt.Sprintf(`<input %s %s type="number" />`, attrs, bind)
	case schema.TypeDate:
		return fmt.Sprintf(`<input %s %s type="date" />`, attrs, bind)
	case schema.TypeBoolean:
		return fmt.Sprintf(`<input %s bind:checked={%s} type="checkbox" />`, attrs, value)
	case schema.TypeFile:
		return fmt.Sprintf(`<input %s type="file" />`, attrs)
	default:
		return fmt.Sprintf(`<input %s %s type="text" />`, attrs, bind)
	}
}

func hasFileField(fields []schema.Field) bool {
	for _, f := range fields {
		if f.Type == schema.TypeFile {
			return true
		}
	}
	return false
}
