package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
)

// SiteFooter renders the closing bar with the mark and outbound links.
func SiteFooter(links vm.LinksViewModel, copyright string) g.Node {
	return Footer(Class("site-footer"),
		Div(Class("container footer-inner"),
			Div(Class("footer-brand"),
				PlacedLogo("footer", LogoSmall, false),
				Span(Class("text-muted text-sm"), g.Text(copyright)),
			),
			Div(Class("footer-links"),
				A(Href(links.SourceRepo), Class("text-muted text-sm"), g.Text("GitHub")),
				A(Href(links.Deploy), Class("text-muted text-sm"), g.Text("Deploy")),
			),
		),
	)
}
