package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers all page and asset routes on the provided mux.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Generated assets.
	mux.HandleFunc("GET /theme.css", h.ThemeCSS)
	mux.HandleFunc("GET /logo/{size}", h.LogoSVG)
	mux.HandleFunc("GET /robots.txt", h.Robots)

	// Page routes.
	mux.HandleFunc("GET /{$}", h.Landing)
	mux.HandleFunc("GET /variants/{name}", h.Variant)
}
