// Package viewmodel defines presentation-ready structs for the page components.
// View models decouple rendering from the domain model and content packages.
package viewmodel

// FeatureViewModel holds presentation-ready data for one capability card.
type FeatureViewModel struct {
	Title           string
	DescriptionHTML string // sanitized inline HTML
	Icon            string
	Accent          string // palette token, e.g. "naval"
}

// AdvisorViewModel holds presentation-ready data for one advisor card.
type AdvisorViewModel struct {
	Name        string
	Initial     string
	Description string
	Accent      string
}

// StepViewModel holds presentation-ready data for one how-it-works step.
type StepViewModel struct {
	Ordinal         string
	Title           string
	DescriptionHTML string
	Accent          string
	HasNext         bool // a connector is drawn to the following step
}

// StatViewModel holds one headline figure under the call-to-action.
type StatViewModel struct {
	Label string
	Value string
}

// LinksViewModel holds the fixed outbound URLs.
type LinksViewModel struct {
	SourceRepo string
	Deploy     string
}

// MetaViewModel holds document metadata for the page shell.
type MetaViewModel struct {
	Title          string
	Description    string
	Keywords       string
	Author         string
	Robots         string
	CanonicalURL   string
	OGTitle        string
	OGDescription  string
	OGType         string
	TwitterCard    string
	StructuredData string // JSON-LD document
}

// LandingViewModel holds all data needed to render the landing page.
type LandingViewModel struct {
	Variant      string
	Meta         MetaViewModel
	Links        LinksViewModel
	HeroLeadHTML string
	Features     []FeatureViewModel
	Advisors     []AdvisorViewModel
	Steps        []StepViewModel
	Stats        []StatViewModel
	Copyright    string
}
