package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
	"github.com/Grandillionaire/council-landing/internal/content"
	"github.com/Grandillionaire/council-landing/internal/domain/motion"
)

// Advisors renders the five-member council grid.
func Advisors(advisors []vm.AdvisorViewModel) g.Node {
	return Section(Class("section"), animated(motion.AdvisorsSection()),
		Div(Class("container"),
			sectionHeading(content.AdvisorsHeading, content.AdvisorsSubheading),
			Div(Class("grid grid-5"),
				g.Map(advisors, func(a vm.AdvisorViewModel) g.Node {
					return Div(Class("advisor"), reveal(),
						Div(Class("advisor-initial text-"+a.Accent), g.Attr("aria-hidden", "true"), g.Text(a.Initial)),
						H3(Class("advisor-name"), g.Text(a.Name)),
						P(Class("advisor-desc text-muted"), g.Text(a.Description)),
					)
				}),
			),
		),
	)
}
