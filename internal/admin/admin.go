// Package admin serves the browser-based management page. The page gates
// itself client-side: it keeps the bearer token in session storage and
// talks to the /_api endpoints, so the route itself needs no auth.
package admin

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed manage.html
var managePage []byte

// Register mounts the management page and the root usage message on the mux.
func Register(mux *chi.Mux) {
	mux.Get("/_manage", servePage)
	mux.Get("/", serveRoot)
}

func servePage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(managePage)
}

func serveRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("Go Links Service\n\nUsage:\n- Visit /_manage to manage your links\n- Use /{shortcut} to redirect\n"))
}
