package generators

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"

	"github.com/markschellhas/chic/internal/fsutil"
)

const (
	ImportAnchor       = "// import models"
	RegistrationAnchor = "// define resources"
	exportPrefix       = "export {"
)

// ModelRegistration describes one model wired into the registration file.
type ModelRegistration struct {
	Name       string
	Factory    string
	ImportPath string
}

func (r ModelRegistration) ImportLine() string {
	return fmt.Sprintf("import { %s } from '%s';", r.Factory, r.ImportPath)
}

func (r ModelRegistration) RegistrationLine() string {
	return fmt.Sprintf("const %s = %s(sequelize, Sequelize);", r.Name, r.Factory)
}

func exportLine(models []ModelRegistration) string {
	if len(models) == 0 {
		return "export {}"
	}
	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
	}
	return "export { " + strings.Join(names, ", ") + " }"
}

// RegistrationFile is the in-memory form of db.js. All edits happen on the
// line slice; the file is only written back as a whole.
type RegistrationFile struct {
	Path  string
	lines []string
}

func ParseRegistrationFile(path string, data []byte) *RegistrationFile {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return &RegistrationFile{Path: path, lines: strings.Split(text, "\n")}
}

func (f *RegistrationFile) Bytes() []byte {
	return []byte(strings.Join(f.lines, "\n"))
}

func (f *RegistrationFile) lastIndex(match func(trimmed string) bool) int {
	idx := -1
	for i, line := range f.lines {
		if match(strings.TrimSpace(line)) {
			idx = i
		}
	}
	return idx
}

func (f *RegistrationFile) anchor(anchor string) (int, error) {
	idx := f.lastIndex(func(line string) bool { return strings.HasPrefix(line, anchor) })
	if idx < 0 {
		return -1, &AnchorNotFoundError{Path: f.Path, Anchor: anchor}
	}
	return idx, nil
}

func (f *RegistrationFile) contains(want string) bool {
	return f.lastIndex(func(line string) bool { return line == want }) >= 0
}

// exportNames parses the last export statement. It must open and close on one line.
func (f *RegistrationFile) exportNames() (int, []string, string, error) {
	idx := f.lastIndex(func(line string) bool { return strings.HasPrefix(line, exportPrefix) })
	if idx < 0 {
		return -1, nil, "", &MalformedExportError{Path: f.Path}
	}

	line := strings.TrimSpace(f.lines[idx])
	suffix := ""
	if strings.HasSuffix(line, ";") {
		suffix = ";"
		line = strings.TrimSuffix(line, ";")
	}
	if !strings.HasSuffix(line, "}") {
		return -1, nil, "", &MalformedExportError{Path: f.Path, Line: f.lines[idx]}
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(line, exportPrefix), "}")
	var names []string
	for _, name := range strings.Split(inner, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return idx, names, suffix, nil
}

func (f *RegistrationFile) insertAfter(idx int, line string) {
	f.lines = append(f.lines, "")
	copy(f.lines[idx+2:], f.lines[idx+1:])
	f.lines[idx+1] = line
}

// Add wires reg into the file and reports whether anything changed. Lines
// and export names that are already present are left alone, so adding the
// same model twice is a no-op.
func (f *RegistrationFile) Add(reg ModelRegistration) (bool, error) {
	importIdx, err := f.anchor(ImportAnchor)
	if err != nil {
		return false, err
	}
	regIdx, err := f.anchor(RegistrationAnchor)
	if err != nil {
		return false, err
	}
	if _, _, _, err := f.exportNames(); err != nil {
		return false, err
	}

	changed := false
	if imp := reg.ImportLine(); !f.contains(imp) {
		f.insertAfter(importIdx, imp)
		if regIdx > importIdx {
			regIdx++
		}
		changed = true
	}
	if def := reg.RegistrationLine(); !f.contains(def) {
		f.insertAfter(regIdx, def)
		changed = true
	}

	idx, names, suffix, _ := f.exportNames()
	for _, name := range names {
		if name == reg.Name {
			return changed, nil
		}
	}
	names = append(names, reg.Name)
	indent := f.lines[idx][:len(f.lines[idx])-len(strings.TrimLeft(f.lines[idx], " \t"))]
	f.lines[idx] = indent + "export { " + strings.Join(names, ", ") + " }" + suffix
	return true, nil
}

// RegisterModel adds reg to the registration file at path on fsys and
// rewrites the file atomically when it changed.
func RegisterModel(fsys afero.Fs, path string, reg ModelRegistration) (bool, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("registration file %s does not exist: %w", path, err)
		}
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	file := ParseRegistrationFile(path, data)
	changed, err := file.Add(reg)
	if err != nil || !changed {
		return false, err
	}

	if err := fsutil.WriteFileAtomic(fsys, path, file.Bytes(), 0644); err != nil {
		return false, &FileWriteError{Path: path, Err: err}
	}
	return true, nil
}

type registrationData struct {
	Dialect string
	Models  []ModelRegistration
}

// RenderRegistrationFile produces a complete db.js for dialect with models
// already registered.
func (g *Generator) RenderRegistrationFile(dialect string, models []ModelRegistration) ([]byte, error) {
	if dialect == "" {
		dialect = "sqlite"
	}
	return g.render("db.js", registrationData{Dialect: dialect, Models: models})
}

// EnsureRegistrationFile creates db.js when it is missing. It reports whether
// the file was created.
func (g *Generator) EnsureRegistrationFile(dialect string) (bool, error) {
	exists, err := fsutil.Exists(g.fs, g.Abs(RegistrationPath))
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", RegistrationPath, err)
	}
	if exists {
		return false, nil
	}

	content, err := g.RenderRegistrationFile(dialect, nil)
	if err != nil {
		return false, err
	}
	if _, err := g.write(RegistrationPath, content); err != nil {
		return false, err
	}
	return true, nil
}

// Register adds n's model to the project's db.js.
func (g *Generator) Register(n Names) (bool, error) {
	return RegisterModel(g.fs, g.Abs(RegistrationPath), n.Registration())
}
