package generators

import (
	"fmt"
	"path"

	"github.com/markschellhas/chic/internal/manifest"
	"github.com/markschellhas/chic/internal/schema"
)

type resourceData struct {
	Names
	Fields       []schema.Field
	// ID is set when the primary key "id" is entered by the user. The form
	// only shows it for new records; existing ones post it as a hidden input.
	ID           *schema.Field
	DisplayField string
	Kind         string
	Title        string
}

func newResourceData(spec schema.ModelSpec) resourceData {
	data := resourceData{
		Names:        NewNames(spec.ModelName),
		DisplayField: spec.DisplayField(),
	}
	for _, f := range spec.FormFields() {
		if f.Name == "id" {
			id := f
			data.ID = &id
			continue
		}
		data.Fields = append(data.Fields, f)
	}
	return data
}

func (g *Generator) Model(spec schema.ModelSpec) (string, error) {
	return g.renderFile(NewNames(spec.ModelName).ModelPath(), "model.js", spec)
}

func (g *Generator) Controller(spec schema.ModelSpec) (string, error) {
	n := NewNames(spec.ModelName)
	return g.renderFile(n.ControllerPath(), "controller.js", n)
}

func (g *Generator) Form(spec schema.ModelSpec) (string, error) {
	data := newResourceData(spec)
	return g.renderFile(data.FormPath(), "form.svelte", data)
}

type page struct {
	dir    string
	kind   string
	server string
}

var pages = []page{
	{dir: "", kind: "index", server: "page_server_index.js"},
	{dir: "new", kind: "new"},
	{dir: "[id]", kind: "show", server: "page_server_show.js"},
	{dir: "[id]/edit", kind: "edit", server: "page_server_edit.js"},
}

func pageTitle(kind string, n Names) string {
	switch kind {
	case "index":
		return n.PluralTitle
	case "new":
		return "New " + n.Model
	case "edit":
		return "Edit " + n.Model
	default:
		return n.Model
	}
}

// Pages writes the index, new, show and edit routes. Every route except
// "new" also gets a +page.server.js.
func (g *Generator) Pages(spec schema.ModelSpec) ([]string, error) {
	var files []string
	for _, p := range pages {
		data := newResourceData(spec)
		data.Kind = p.kind
		data.Title = pageTitle(p.kind, data.Names)

		dir := data.PageDir(p.dir)
		file, err := g.renderFile(path.Join(dir, "+page.svelte"), "page.svelte", data)
		if err != nil {
			return files, err
		}
		files = append(files, file)

		if p.server == "" {
			continue
		}
		file, err = g.renderFile(path.Join(dir, "+page.server.js"), p.server, data)
		if err != nil {
			return files, err
		}
		files = append(files, file)
	}
	return files, nil
}

func (g *Generator) APIRoutes(spec schema.ModelSpec) ([]string, error) {
	n := NewNames(spec.ModelName)

	index, err := g.renderFile(path.Join(n.APIDir(""), "+server.js"), "api_index.js", n)
	if err != nil {
		return nil, err
	}
	item, err := g.renderFile(path.Join(n.APIDir("[id]"), "+server.js"), "api_item.js", n)
	if err != nil {
		return []string{index}, err
	}
	return []string{index, item}, nil
}

func (g *Generator) DestroyButton() (string, error) {
	return g.renderFile(DestroyButtonPath, "destroy_button.svelte", nil)
}

// Routes describes the page and API routes generated for a resource.
func Routes(n Names) []manifest.Route {
	base := "/" + n.Plural
	api := "/api/" + n.Plural
	return []manifest.Route{
		{Method: "GET", Path: base, Description: fmt.Sprintf("List %s", n.Plural)},
		{Method: "GET", Path: base + "/new", Description: fmt.Sprintf("Create a new %s", n.Singular)},
		{Method: "GET", Path: base + "/[id]", Description: fmt.Sprintf("View a %s", n.Singular)},
		{Method: "GET", Path: base + "/[id]/edit", Description: fmt.Sprintf("Edit a %s", n.Singular)},
		{Method: "GET", Path: api, Description: fmt.Sprintf("Lists %s", n.Plural), Action: "list" + n.PluralTitle},
		{Method: "POST", Path: api, Description: fmt.Sprintf("Creates a new %s", n.Singular), Action: "create" + n.Model},
		{Method: "GET", Path: api + "/[id]", Description: fmt.Sprintf("View a %s", n.Singular), Action: "get" + n.Model},
		{Method: "PUT", Path: api + "/[id]", Description: fmt.Sprintf("Updates a %s", n.Singular), Action: "update" + n.Model},
		{Method: "DELETE", Path: api + "/[id]", Description: fmt.Sprintf("Destroys a %s", n.Singular), Action: "destroy" + n.Model},
	}
}
