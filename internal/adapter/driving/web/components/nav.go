package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
)

// NavBar renders the fixed top navigation.
func NavBar(links vm.LinksViewModel) g.Node {
	return Nav(Class("site-nav bg-surface"),
		Div(Class("container nav-inner"),
			Div(Class("nav-logo-full"), PlacedLogo("nav", LogoSmall, true)),
			Div(Class("nav-logo-compact"), LogoCompact()),
			Div(Class("nav-links"),
				A(Href("#features"), Class("nav-link text-muted"), g.Text("Features")),
				A(Href("#how"), Class("nav-link text-muted"), g.Text("How it works")),
				A(Href(links.SourceRepo), Class("btn btn-soft text-primary"),
					g.Attr("aria-label", "View StartupCouncil on GitHub"),
					g.Text("View on GitHub"),
				),
			),
		),
	)
}
