// Package web holds the embedded page templates and static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"

	"cessao-fidc/internal/charts"
	"cessao-fidc/internal/format"
	"cessao-fidc/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"brl":     format.BRL,
	"brlK":    format.BRLThousands,
	"int":     format.Int,
	"percent": format.Percent,
	"decimal": format.Decimal,
	"color":   charts.PaletteColor,
	"toastClass": func(v model.Variant) string {
		if v == model.VariantDestructive {
			return "toast toast-destructive"
		}
		return "toast"
	},
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

// Assets returns the static files rooted at the assets directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
