// Package views embeds the HTML templates and exposes the Fiber view engine
// rendering them.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// Engine returns a view engine over the embedded templates.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
