// Package static embeds the portal's stylesheet, favicon and robots.txt.
package static

import (
	"embed"
	"net/http"
)

//go:embed favicon.svg robots.txt static/style.css
var files embed.FS

// Paths lists the URL paths served from the embedded files. Each maps to the
// file of the same name, so /static/ is never listed as a directory.
var Paths = []string{"/favicon.svg", "/robots.txt", "/static/style.css"}

// Register serves every embedded file at its exact path.
func Register(mux *http.ServeMux) {
	fileServer := http.FileServer(http.FS(files))
	for _, p := range Paths {
		mux.Handle("GET "+p, fileServer)
	}
}
