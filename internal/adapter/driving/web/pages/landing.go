// Package pages composes section components into full documents and exposes
// them as templ components.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"

	"github.com/Grandillionaire/council-landing/internal/adapter/driving/web/components"
	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
	"github.com/Grandillionaire/council-landing/internal/domain/model"
)

// Landing returns the landing page for the view model's variant. Sections are
// emitted in fixed order: nav, hero, features, advisors, how-it-works,
// call-to-action, footer. The response is flushed once the hero is written so
// the first screen paints while the rest streams.
func Landing(page vm.LandingViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return components.Layout(page.Meta, sections(ctx, page)...).Render(w)
	})
}

func sections(ctx context.Context, page vm.LandingViewModel) []g.Node {
	steps, cta := components.StepsEnhanced(page.Steps), components.CTAEnhanced(page.Links, page.Stats)
	if model.Variant(page.Variant) == model.VariantClassic {
		steps, cta = components.StepsClassic(page.Steps), components.CTAClassic(page.Links)
	}

	return []g.Node{
		components.NavBar(page.Links),
		components.Hero(page.HeroLeadHTML, page.Links),
		inline(ctx, templ.Flush()),
		components.Features(page.Features),
		components.Advisors(page.Advisors),
		steps,
		cta,
		components.SiteFooter(page.Links, page.Copyright),
	}
}

// inline renders a templ component in place inside a gomponents tree.
func inline(ctx context.Context, c templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(ctx, w)
	})
}
