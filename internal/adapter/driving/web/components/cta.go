package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
	"github.com/Grandillionaire/council-landing/internal/content"
	"github.com/Grandillionaire/council-landing/internal/domain/motion"
)

// CTAClassic renders the compact call-to-action block.
func CTAClassic(links vm.LinksViewModel) g.Node {
	return Section(Class("section"), animated(motion.CTASection(false)),
		Div(Class("container container-narrow"),
			Div(Class("cta-panel border-primary"), reveal(),
				H2(g.Text(content.CTAHeadline+" "+content.CTAHeadlineAccent)),
				P(Class("cta-lead text-muted"), g.Text(content.CTALead)),
				ctaButtons(links),
				Div(Class("cta-glow animate-gradient"), g.Attr("aria-hidden", "true")),
			),
		),
	)
}

// CTAEnhanced renders the call-to-action with badge, stats and the
// scroll-linked scale and fade.
func CTAEnhanced(links vm.LinksViewModel, stats []vm.StatViewModel) g.Node {
	return Section(Class("section cta-enhanced"), animated(motion.CTASection(true)),
		Div(Class("container container-narrow"),
			Div(Class("cta-panel border-primary"), trackTarget(""),
				Div(Class("badge border-primary"), reveal(),
					Span(Class("badge-dot bg-primary animate-pulse")),
					Span(Class("text-primary"), g.Text(content.CTABadge)),
				),
				H2(reveal(),
					g.Text(content.CTAHeadline),
					Span(Class("cta-accent text-gradient-primary"), g.Text(content.CTAHeadlineAccent)),
				),
				P(Class("cta-lead text-muted"), reveal(), g.Text(content.CTALead)),
				Div(reveal(), ctaButtons(links)),
				Div(Class("stats"),
					g.Map(stats, func(s vm.StatViewModel) g.Node {
						return Div(Class("stat"), reveal(),
							Div(Class("stat-value text-primary"), g.Text(s.Value)),
							Div(Class("stat-label text-muted"), g.Text(s.Label)),
						)
					}),
				),
			),
		),
		Div(Class("ring ring-left animate-float"), g.Attr("aria-hidden", "true")),
		Div(Class("ring ring-right animate-float"), g.Attr("aria-hidden", "true")),
	)
}

func ctaButtons(links vm.LinksViewModel) g.Node {
	return Div(Class("cta-row"),
		A(Href(links.Deploy), Class("btn btn-primary bg-primary"), g.Text(content.CTADeploy)),
		A(Href(links.SourceRepo), Class("btn btn-outline bg-surface"), g.Text(content.CTASource)),
	)
}
