// Package content holds the static copy of the landing page. Every value here
// is a literal; nothing is loaded or mutated at runtime.
package content

import "github.com/Grandillionaire/council-landing/internal/domain/model"

// ProductName is the brand shown in the wordmark and page title.
const ProductName = "StartupCouncil"

// Tagline is the secondary line of the wordmark.
const Tagline = "AI Advisory Platform"

// CopyrightYear is printed in the footer.
const CopyrightYear = 2024

const sourceRepo = "https://github.com/Grandillionaire/StartupCouncilAI"

// Links returns the two fixed outbound URLs.
func Links() model.Links {
	return model.Links{
		SourceRepo: sourceRepo,
		Deploy:     "https://vercel.com/new/clone?repository-url=" + sourceRepo,
	}
}

// Metadata returns the document metadata for the landing page.
func Metadata() model.Metadata {
	return model.Metadata{
		Title:         ProductName + " — " + Tagline,
		Description:   "Five legendary advisors. One consensus. Deploy your private AI council for strategic decision-making.",
		Keywords:      []string{"AI advisory", "startup advice", "decision making", "artificial intelligence"},
		Author:        ProductName,
		OGTitle:       ProductName + " — " + Tagline,
		OGDescription: "Deploy your private AI council for strategic decision-making.",
		OGType:        "website",
		TwitterCard:   "summary_large_image",
		Robots:        "index, follow",
	}
}

// Hero copy.
const (
	HeroBadge     = "Deploy your own private instance"
	HeroHeadline  = "Five AI advisors."
	HeroSubline   = "One consensus."
	HeroLead      = "Naval, Elon, Larry, Alex, and Pavel debate your toughest decisions. Deploy your private council in **60 seconds**."
	HeroDeployCTA = "Deploy to Vercel"
	HeroLearnMore = "Learn more"
)

// Section headings.
const (
	FeaturesHeading    = "The council's capabilities"
	FeaturesSubheading = "Five unique perspectives, one powerful platform"
	AdvisorsHeading    = "Your advisory council"
	AdvisorsSubheading = "Five legendary minds, each with unique expertise"
	StepsHeading       = "Three steps to clarity"
	StepsSubheading    = "From question to consensus in minutes"
	CTABadge           = "Ready to deploy"
	CTAHeadline        = "Ready to make"
	CTAHeadlineAccent  = "better decisions?"
	CTALead            = "Deploy your private AI council and tap into five legendary minds for every strategic choice you make."
	CTADeploy          = "Deploy your council"
	CTASource          = "View source code"
)

// Features returns the six capability cards.
func Features() []model.Feature {
	return []model.Feature{
		{
			Title:       "Multi-agent debate",
			Description: "Five AI personalities with distinct expertise debate every angle of your question.",
			Icon:        "🧠",
			Accent:      model.AccentNaval,
		},
		{
			Title:       "Consensus building",
			Description: "Watch as advisors challenge, refine, and converge on optimal solutions.",
			Icon:        "🤝",
			Accent:      model.AccentElon,
		},
		{
			Title:       "Your private instance",
			Description: "Deploy your own council. Your data *never* leaves your browser.",
			Icon:        "🔒",
			Accent:      model.AccentLarry,
		},
		{
			Title:       "90% cost reduction",
			Description: "Advanced prompt caching cuts API costs while maintaining quality.",
			Icon:        "💎",
			Accent:      model.AccentAlex,
		},
		{
			Title:       "Voice interaction",
			Description: "Speak naturally to your council. Get answers hands-free.",
			Icon:        "🎙️",
			Accent:      model.AccentPavel,
		},
		{
			Title:       "Export anywhere",
			Description: "Download as PDF, Markdown, or share debate transcripts with your team.",
			Icon:        "📤",
			Accent:      model.AccentPrimary,
		},
	}
}

// Advisors returns the five council members in display order.
func Advisors() []model.Advisor {
	return []model.Advisor{
		newAdvisor("Naval", model.AccentNaval, "Philosophy & Strategy"),
		newAdvisor("Elon", model.AccentElon, "Innovation & Scale"),
		newAdvisor("Larry", model.AccentLarry, "Enterprise & Data"),
		newAdvisor("Alex", model.AccentAlex, "Sales & Marketing"),
		newAdvisor("Pavel", model.AccentPavel, "Product & Privacy"),
	}
}

// Steps returns the ordered "how it works" entries.
func Steps() []model.Step {
	return []model.Step{
		{
			Ordinal:     "01",
			Title:       "Deploy your instance",
			Description: "Click deploy, connect GitHub, and your private council is live in 60 seconds.",
			Accent:      model.AccentNaval,
		},
		{
			Ordinal:     "02",
			Title:       "Ask your question",
			Description: "Type or speak your challenge. The council begins their analysis immediately.",
			Accent:      model.AccentElon,
		},
		{
			Ordinal:     "03",
			Title:       "Receive consensus",
			Description: "Five perspectives debate, challenge, and refine to reach the best solution.",
			Accent:      model.AccentPrimary,
		},
	}
}

// Stats returns the figures shown beneath the enhanced call-to-action.
func Stats() []model.Stat {
	return []model.Stat{
		{Label: "Deploy time", Value: "60s"},
		{Label: "Advisors", Value: "5"},
		{Label: "Cost reduction", Value: "90%"},
	}
}

func newAdvisor(name string, accent model.Accent, desc string) model.Advisor {
	initial := ""
	for _, r := range name {
		initial = string(r)
		break
	}
	return model.Advisor{Name: name, Accent: accent, Description: desc, Initial: initial}
}
