package http

import (
	"embed"
	"fmt"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/eltonkaiton/mombasa-admin/internal/view"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine loads the embedded page templates and the helpers they call.
func NewViewEngine(reload bool) (*html.Engine, error) {
	root, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, fmt.Errorf("views: %w", err)
	}
	engine := html.NewFileSystem(nethttp.FS(root), ".html")
	engine.Reload(reload)
	engine.AddFunc("money", view.Money)
	engine.AddFunc("amount", view.Amount)
	engine.AddFunc("count", view.Count)
	engine.AddFunc("dash", view.Dash)
	engine.AddFunc("datetime", view.DateTime)
	engine.AddFunc("date", view.Date)
	engine.AddFunc("humanize", view.Humanize)
	engine.AddFunc("sectionTitle", view.SectionTitle)
	return engine, nil
}
