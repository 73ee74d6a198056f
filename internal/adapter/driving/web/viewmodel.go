package web

import (
	"encoding/json"
	"fmt"
	"strings"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
	"github.com/Grandillionaire/council-landing/internal/content"
	"github.com/Grandillionaire/council-landing/internal/domain/model"
)

// NewLandingViewModel assembles the landing page view model for a variant.
// baseURL is the public origin used for the canonical link and structured data.
func NewLandingViewModel(variant model.Variant, baseURL string) (vm.LandingViewModel, error) {
	links := content.Links()
	meta := content.Metadata()

	canonical := strings.TrimSuffix(baseURL, "/") + "/"
	structured, err := structuredData(meta, links, canonical)
	if err != nil {
		return vm.LandingViewModel{}, err
	}

	return vm.LandingViewModel{
		Variant:      string(variant),
		Meta:         toMetaViewModel(meta, canonical, structured),
		Links:        vm.LinksViewModel{SourceRepo: links.SourceRepo, Deploy: links.Deploy},
		HeroLeadHTML: RenderInline(content.HeroLead),
		Features:     toFeatureViewModels(content.Features()),
		Advisors:     toAdvisorViewModels(content.Advisors()),
		Steps:        toStepViewModels(content.Steps()),
		Stats:        toStatViewModels(content.Stats()),
		Copyright:    fmt.Sprintf("© %d %s", content.CopyrightYear, content.ProductName),
	}, nil
}

func toMetaViewModel(m model.Metadata, canonical, structured string) vm.MetaViewModel {
	return vm.MetaViewModel{
		Title:          m.Title,
		Description:    m.Description,
		Keywords:       strings.Join(m.Keywords, ", "),
		Author:         m.Author,
		Robots:         m.Robots,
		CanonicalURL:   canonical,
		OGTitle:        m.OGTitle,
		OGDescription:  m.OGDescription,
		OGType:         m.OGType,
		TwitterCard:    m.TwitterCard,
		StructuredData: structured,
	}
}

// structuredData renders the schema.org description of the product.
// encoding/json escapes '<', so the result is safe inside a <script> element.
func structuredData(m model.Metadata, links model.Links, canonical string) (string, error) {
	doc := map[string]any{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                content.ProductName,
		"description":         m.Description,
		"applicationCategory": "BusinessApplication",
		"operatingSystem":     "Web",
		"url":                 canonical,
		"downloadUrl":         links.Deploy,
		"codeRepository":      links.SourceRepo,
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "USD",
		},
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal structured data: %w", err)
	}
	return string(b), nil
}

func toFeatureViewModels(features []model.Feature) []vm.FeatureViewModel {
	vms := make([]vm.FeatureViewModel, 0, len(features))
	for _, f := range features {
		vms = append(vms, vm.FeatureViewModel{
			Title:           f.Title,
			DescriptionHTML: RenderInline(f.Description),
			Icon:            f.Icon,
			Accent:          string(f.Accent),
		})
	}
	return vms
}

func toAdvisorViewModels(advisors []model.Advisor) []vm.AdvisorViewModel {
	vms := make([]vm.AdvisorViewModel, 0, len(advisors))
	for _, a := range advisors {
		vms = append(vms, vm.AdvisorViewModel{
			Name:        a.Name,
			Initial:     a.Initial,
			Description: a.Description,
			Accent:      string(a.Accent),
		})
	}
	return vms
}

func toStepViewModels(steps []model.Step) []vm.StepViewModel {
	vms := make([]vm.StepViewModel, 0, len(steps))
	for i, s := range steps {
		vms = append(vms, vm.StepViewModel{
			Ordinal:         s.Ordinal,
			Title:           s.Title,
			DescriptionHTML: RenderInline(s.Description),
			Accent:          string(s.Accent),
			HasNext:         i < len(steps)-1,
		})
	}
	return vms
}

func toStatViewModels(stats []model.Stat) []vm.StatViewModel {
	vms := make([]vm.StatViewModel, 0, len(stats))
	for _, s := range stats {
		vms = append(vms, vm.StatViewModel{Label: s.Label, Value: s.Value})
	}
	return vms
}
