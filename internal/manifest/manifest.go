// Package manifest reads and writes chic.json, the project record of
// generated models and routes.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/markschellhas/chic/internal/fsutil"
)

const FileName = "chic.json"

type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Model struct {
	Name   string  `json:"name"`
	Table  string  `json:"table,omitempty"`
	Fields []Field `json:"fields"`
}

type Route struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Manifest is the whole chic.json document. It is loaded, changed in memory
// and saved back in one piece.
type Manifest struct {
	Models     []Model           `json:"models"`
	Components []json.RawMessage `json:"components"`
	Routes     []Route           `json:"routes"`
}

func New() *Manifest {
	return &Manifest{
		Models:     []Model{},
		Components: []json.RawMessage{},
		Routes:     []Route{},
	}
}

func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads the manifest of the project at root. A missing file yields an
// empty manifest.
func Load(fsys afero.Fs, root string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, Path(root))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	m := New()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if m.Models == nil {
		m.Models = []Model{}
	}
	if m.Components == nil {
		m.Components = []json.RawMessage{}
	}
	if m.Routes == nil {
		m.Routes = []Route{}
	}
	return m, nil
}

func (m *Manifest) Save(fsys afero.Fs, root string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", FileName, err)
	}
	return fsutil.WriteFileAtomic(fsys, Path(root), append(data, '\n'), 0644)
}

func (m *Manifest) HasModel(name string) bool {
	for _, model := range m.Models {
		if model.Name == name {
			return true
		}
	}
	return false
}

// PutModel adds model, replacing an existing entry with the same name.
func (m *Manifest) PutModel(model Model) {
	if model.Fields == nil {
		model.Fields = []Field{}
	}
	for i := range m.Models {
		if m.Models[i].Name == model.Name {
			m.Models[i] = model
			return
		}
	}
	m.Models = append(m.Models, model)
}

// AddRoutes appends routes whose method and path are not recorded yet and
// returns how many were added.
func (m *Manifest) AddRoutes(routes ...Route) int {
	added := 0
	for _, r := range routes {
		if m.hasRoute(r.Method, r.Path) {
			continue
		}
		m.Routes = append(m.Routes, r)
		added++
	}
	return added
}

func (m *Manifest) hasRoute(method, path string) bool {
	for _, r := range m.Routes {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}
