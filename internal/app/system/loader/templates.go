package loader

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

// The error snippet is rendered by name, so it lives in its own set rather
// than in the shared partials.
func init() {
	templates.Register(templates.Set{
		Name:     "loader",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
