package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
	"github.com/Grandillionaire/council-landing/internal/content"
	"github.com/Grandillionaire/council-landing/internal/domain/motion"
)

// StepsClassic renders the how-it-works list as plain numbered columns.
func StepsClassic(steps []vm.StepViewModel) g.Node {
	return Section(Class("section section-tinted"), animated(motion.StepsSection(false)),
		Div(Class("container"),
			sectionHeading(content.StepsHeading, content.StepsSubheading),
			Div(Class("grid grid-3 steps"),
				g.Map(steps, func(s vm.StepViewModel) g.Node {
					return Div(Class("step"), reveal(),
						Div(Class("step-ordinal step-ordinal-faint font-mono"), g.Text(s.Ordinal)),
						H3(Class("step-title"), g.Text(s.Title)),
						P(Class("text-muted"), g.Raw(s.DescriptionHTML)),
					)
				}),
			),
		),
	)
}

// StepsEnhanced renders the how-it-works list as cards joined by connectors,
// with a vertical line that grows as the section scrolls by.
func StepsEnhanced(steps []vm.StepViewModel) g.Node {
	return Section(Class("section section-tinted steps-enhanced"), animated(motion.StepsSection(true)),
		Div(Class("container steps-container"),
			Div(Class("steps-line hidden-mobile"), trackTarget(""), g.Attr("aria-hidden", "true")),
			sectionHeading(content.StepsHeading, content.StepsSubheading),
			Div(Class("grid grid-3 steps"),
				g.Map(steps, func(s vm.StepViewModel) g.Node {
					return Div(Class("step"), reveal(),
						Div(Class("step-ordinal font-mono text-"+s.Accent), g.Text(s.Ordinal)),
						Div(Class("card step-card"),
							H3(Class("step-title"), g.Text(s.Title)),
							P(Class("text-muted"), g.Raw(s.DescriptionHTML)),
						),
						g.If(s.HasNext,
							Div(Class("step-connector hidden-mobile"), g.Attr("aria-hidden", "true"),
								Span(Class("step-connector-dot bg-primary animate-pulse")),
							),
						),
					)
				}),
			),
		),
	)
}
