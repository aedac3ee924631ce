// internal/app/features/sections/views/views.go
package sectionsviews

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "sections",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
