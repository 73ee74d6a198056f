// Package web implements the HTML driving adapter: the landing page, its
// variants, the generated theme stylesheet and the standalone logo.
package web

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/Grandillionaire/council-landing/internal/adapter/driving/web/components"
	"github.com/Grandillionaire/council-landing/internal/adapter/driving/web/pages"
	"github.com/Grandillionaire/council-landing/internal/domain/model"
	"github.com/Grandillionaire/council-landing/internal/theme"
)

const robotsTxt = "User-agent: *\nAllow: /\n"

// Handler is the web driving adapter that serves server-rendered HTML.
// Everything it serves is computed once at construction; requests only read.
type Handler struct {
	pages          map[model.Variant]*templ.ComponentHandler
	defaultVariant model.Variant
	themeCSS       []byte
	themeETag      string
	cacheControl   string
	logger         *slog.Logger
}

// NewHandler builds the page for every variant and renders the theme
// stylesheet. baseURL is the public origin used for canonical links.
func NewHandler(
	defaultVariant model.Variant,
	baseURL string,
	th *theme.Theme,
	cacheMaxAge time.Duration,
	logger *slog.Logger,
) (*Handler, error) {
	built := make(map[model.Variant]*templ.ComponentHandler, len(model.Variants()))
	for _, v := range model.Variants() {
		page, err := NewLandingViewModel(v, baseURL)
		if err != nil {
			return nil, fmt.Errorf("build %s page: %w", v, err)
		}
		built[v] = templ.Handler(pages.Landing(page),
			templ.WithStreaming(),
			templ.WithErrorHandler(renderErrorHandler(logger, v)),
		)
	}
	if _, ok := built[defaultVariant]; !ok {
		return nil, fmt.Errorf("unknown default variant %q", defaultVariant)
	}

	css := th.CSS()

	return &Handler{
		pages:          built,
		defaultVariant: defaultVariant,
		themeCSS:       []byte(css),
		themeETag:      theme.ETag(css),
		cacheControl:   "public, max-age=" + strconv.Itoa(int(cacheMaxAge.Seconds())),
		logger:         logger,
	}, nil
}

// Landing renders the page in the configured default variant.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.pages[h.defaultVariant].ServeHTTP(w, r)
}

// Variant renders the page in the variant named by the path.
func (h *Handler) Variant(w http.ResponseWriter, r *http.Request) {
	v, err := model.ParseVariant(r.PathValue("name"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.pages[v].ServeHTTP(w, r)
}

// renderErrorHandler logs a failed page render. Pages stream, so by the time
// rendering fails the status line and part of the body are usually on the
// wire; nothing more is written. Rendering only fails when the client has
// gone away or the request context ended.
func renderErrorHandler(logger *slog.Logger, v model.Variant) func(*http.Request, error) http.Handler {
	return func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			logger.Error("failed to render landing page",
				"variant", v,
				"path", r.URL.Path,
				"error", err,
			)
		})
	}
}

// ThemeCSS serves the generated stylesheet with a strong validator.
func (h *Handler) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", h.themeETag)
	w.Header().Set("Cache-Control", h.cacheControl)

	if etagMatch(r.Header.Get("If-None-Match"), h.themeETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(h.themeCSS)
}

// LogoSVG serves the mark as a standalone SVG document in the requested size.
func (h *Handler) LogoSVG(w http.ResponseWriter, r *http.Request) {
	size, ok := components.ParseLogoSize(r.PathValue("size"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	if err := components.LogoMark(size, true).Render(&buf); err != nil {
		h.logger.Error("failed to render logo", "size", size, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", h.cacheControl)
	_, _ = w.Write(buf.Bytes())
}

// Robots allows every crawler everywhere.
func (h *Handler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(robotsTxt))
}

// etagMatch reports whether an If-None-Match header lists etag or "*".
func etagMatch(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
