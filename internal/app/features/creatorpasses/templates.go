// internal/app/features/creatorpasses/templates.go
package creatorpasses

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "creatorpasses",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
