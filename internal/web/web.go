// Package web embeds the student-facing static site.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var assets embed.FS

// Handler serves the embedded site. Mount it at the server root so the files
// are reachable under /static/.
func Handler() http.Handler {
	return http.FileServer(http.FS(assets))
}
