// Package components renders the landing page sections with gomponents.
// Every component is a pure function of its view model.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
)

// Asset paths referenced by the page shell.
const (
	ThemeCSSPath = "/theme.css"
	SiteCSSPath  = "/static/site.css"
	MotionJSPath = "/static/motion.js"
	FaviconPath  = "/logo/md"
)

// enableScript flags the document as script-capable before first paint so
// entrance targets can start hidden. Without it every section renders in its
// final state. If motion.js has not taken over after three seconds the flag is
// dropped again and the page falls back to static.
const enableScript = `(function(d){d.classList.add("js");setTimeout(function(){` +
	`if(!d.classList.contains("motion-ready"))d.classList.remove("js")},3000)})(document.documentElement)`

// Layout wraps body in the HTML document shell: metadata, social tags,
// structured data, fonts and stylesheets.
func Layout(meta vm.MetaViewModel, body ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),
				Meta(Name("keywords"), Content(meta.Keywords)),
				Meta(Name("author"), Content(meta.Author)),
				Meta(Name("robots"), Content(meta.Robots)),
				Link(Rel("canonical"), Href(meta.CanonicalURL)),
				Meta(g.Attr("property", "og:title"), Content(meta.OGTitle)),
				Meta(g.Attr("property", "og:description"), Content(meta.OGDescription)),
				Meta(g.Attr("property", "og:type"), Content(meta.OGType)),
				Meta(g.Attr("property", "og:url"), Content(meta.CanonicalURL)),
				Meta(Name("twitter:card"), Content(meta.TwitterCard)),
				Meta(Name("twitter:title"), Content(meta.OGTitle)),
				Meta(Name("twitter:description"), Content(meta.OGDescription)),
				Link(Rel("icon"), Type("image/svg+xml"), Href(FaviconPath)),
				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Fira+Code:wght@300..700&display=swap")),
				Link(Rel("stylesheet"), Href(ThemeCSSPath)),
				Link(Rel("stylesheet"), Href(SiteCSSPath)),
				Script(g.Raw(enableScript)),
				g.If(meta.StructuredData != "",
					Script(Type("application/ld+json"), g.Raw(meta.StructuredData)),
				),
			),
			Body(Class("antialiased bg-background text-foreground font-sans"),
				Main(Class("page"), g.Group(body)),
				Script(Src(MotionJSPath), Defer()),
			),
		),
	)
}
