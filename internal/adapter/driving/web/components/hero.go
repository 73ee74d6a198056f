package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
	"github.com/Grandillionaire/council-landing/internal/content"
	"github.com/Grandillionaire/council-landing/internal/domain/motion"
)

// Hero renders the full-height intro with the parallax headline block.
func Hero(leadHTML string, links vm.LinksViewModel) g.Node {
	sec := motion.HeroSection()

	return Section(Class("hero"), animated(sec),
		Div(Class("hero-content"), trackTarget(motion.Style(sec.Initial())),
			Div(reveal(),
				Span(Class("badge border-primary"),
					Span(Class("badge-dot bg-primary animate-pulse")),
					Span(Class("text-primary"), g.Text(content.HeroBadge)),
				),
			),
			H1(Class("hero-title"), reveal(),
				Span(Class("text-gradient-primary"), g.Text(content.HeroHeadline)),
				Br(),
				Span(Class("text-foreground"), g.Text(content.HeroSubline)),
			),
			P(Class("hero-lead text-muted"), reveal(), g.Raw(leadHTML)),
			Div(Class("cta-row"), reveal(),
				A(Href(links.Deploy), Class("btn btn-primary bg-primary"),
					g.Attr("aria-label", "Deploy StartupCouncil to Vercel"),
					g.Text(content.HeroDeployCTA),
				),
				A(Href("#features"), Class("btn btn-outline bg-surface"),
					g.Attr("aria-label", "Learn more about StartupCouncil"),
					g.Text(content.HeroLearnMore),
				),
			),
		),
		Div(Class("blob blob-left"), g.Attr("aria-hidden", "true")),
		Div(Class("blob blob-right"), g.Attr("aria-hidden", "true")),
	)
}
