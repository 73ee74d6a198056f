package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
	"github.com/Grandillionaire/council-landing/internal/content"
	"github.com/Grandillionaire/council-landing/internal/domain/motion"
)

// Features renders the capability grid.
func Features(features []vm.FeatureViewModel) g.Node {
	return Section(Class("section section-tinted"), animated(motion.FeaturesSection()),
		Div(Class("container"),
			sectionHeading(content.FeaturesHeading, content.FeaturesSubheading),
			Div(Class("grid grid-3"),
				g.Map(features, func(f vm.FeatureViewModel) g.Node {
					return Article(Class("card feature-card border-"+f.Accent), reveal(),
						Div(Class("feature-icon"), g.Attr("aria-hidden", "true"), g.Text(f.Icon)),
						H3(Class("card-title text-"+f.Accent), g.Text(f.Title)),
						P(Class("text-muted"), g.Raw(f.DescriptionHTML)),
					)
				}),
			),
		),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return Div(Class("section-heading"), reveal(),
		H2(g.Text(title)),
		P(Class("text-muted"), g.Text(subtitle)),
	)
}
