package generators

import (
	"path"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/markschellhas/chic/internal/schema"
)

// Names are the identifiers and paths derived from a model name.
type Names struct {
	Model       string // Post
	PluralTitle string // Posts
	Singular    string // post
	Plural      string // posts
}

func NewNames(modelName string) Names {
	plural := inflection.Plural(modelName)
	return Names{
		Model:       modelName,
		PluralTitle: plural,
		Singular:    strings.ToLower(modelName),
		Plural:      strings.ToLower(plural),
	}
}

// ResourceNames derives names from user input such as "posts" or "blog_post".
func ResourceNames(resource string) Names {
	return NewNames(schema.ModelName(resource))
}

func (n Names) Registration() ModelRegistration {
	return ModelRegistration{
		Name:       n.Model,
		Factory:    n.Model + "Model",
		ImportPath: "../models/" + n.Model + "Model.js",
	}
}

// Project-relative output paths, always slash separated.
const (
	ModelsDir         = "src/lib/models"
	DBDir             = "src/lib/db"
	RegistrationPath  = DBDir + "/db.js"
	SnapshotPath      = ModelsDir + "/tables.json"
	DestroyButtonPath = "src/lib/components/chicjs/DestroyButton.svelte"
	controllersDir    = "src/lib/controllers"
	componentsDir     = "src/lib/components"
	routesDir         = "src/routes"
	apiRoutesDir      = routesDir + "/api"
)

func (n Names) ModelPath() string {
	return path.Join(ModelsDir, n.Model+"Model.js")
}

func (n Names) ControllerPath() string {
	return path.Join(controllersDir, n.Plural, n.Plural+"_controller.js")
}

func (n Names) FormPath() string {
	return path.Join(componentsDir, n.Plural, "Form.svelte")
}

func (n Names) PageDir(sub string) string {
	return path.Join(routesDir, n.Plural, sub)
}

func (n Names) APIDir(sub string) string {
	return path.Join(apiRoutesDir, n.Plural, sub)
}
