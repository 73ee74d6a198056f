package motion

import "encoding/json"

// Section IDs double as in-page anchors.
const (
	SectionHero     = "hero"
	SectionFeatures = "features"
	SectionAdvisors = "advisors"
	SectionSteps    = "how"
	SectionCTA      = "deploy"
)

// revealMargin is how far inside the viewport a section must be before its
// entrance fires.
const revealMargin = -100

var (
	heroSpring    = CriticallyDamped(300)
	advisorSpring = Spring{Stiffness: 100, Damping: 15, Mass: 1}
	stepSpring    = Spring{Stiffness: 100, Damping: 15, Mass: 1}
	scrollSpring  = CriticallyDamped(120)
)

// HeroSection parallaxes the hero copy down and fades it out over the first
// screenful of scrolling.
func HeroSection() Section {
	return Section{
		ID: SectionHero,
		Tracks: []Track{
			{Property: PropY, Signal: SignalScroll, Range: MustRange([]float64{0, 500}, []float64{0, 150}), Spring: &heroSpring},
			{Property: PropOpacity, Signal: SignalScroll, Range: MustRange([]float64{0, 300}, []float64{1, 0}), Spring: &heroSpring},
		},
		Entrance: &Entrance{
			From:     map[Property]float64{PropOpacity: 0, PropY: 20},
			Duration: 0.5,
			Stagger:  0.1,
		},
	}
}

// FeaturesSection fades feature cards up one after another.
func FeaturesSection() Section {
	return Section{
		ID:     SectionFeatures,
		Margin: revealMargin,
		Entrance: &Entrance{
			From:     map[Property]float64{PropOpacity: 0, PropY: 20},
			Duration: 0.5,
			Stagger:  0.1,
		},
	}
}

// AdvisorsSection pops advisor cards in on a bouncy spring.
func AdvisorsSection() Section {
	return Section{
		ID:     SectionAdvisors,
		Margin: revealMargin,
		Entrance: &Entrance{
			From:    map[Property]float64{PropOpacity: 0, PropScale: 0.8, PropY: 20},
			Stagger: 0.08,
			Spring:  &advisorSpring,
		},
	}
}

// StepsSection reveals the how-it-works steps. The enhanced variant also
// grows a connector line with the section's scroll progress.
func StepsSection(enhanced bool) Section {
	if !enhanced {
		return Section{
			ID:     SectionSteps,
			Margin: -50,
			Entrance: &Entrance{
				From:     map[Property]float64{PropOpacity: 0, PropY: 30},
				Duration: 0.5,
				Stagger:  0.15,
			},
		}
	}

	return Section{
		ID:     SectionSteps,
		Margin: revealMargin,
		Tracks: []Track{
			{Property: PropHeight, Signal: SignalProgress, Range: MustRange([]float64{0, 1}, []float64{0, 100}), Spring: &scrollSpring},
		},
		Entrance: &Entrance{
			From:    map[Property]float64{PropOpacity: 0, PropY: 50},
			Stagger: 0.2,
			Spring:  &stepSpring,
		},
	}
}

// CTASection reveals the call-to-action block. The enhanced variant also
// scales and fades it with the section's scroll progress.
func CTASection(enhanced bool) Section {
	if !enhanced {
		return Section{
			ID:     SectionCTA,
			Margin: revealMargin,
			Entrance: &Entrance{
				From:     map[Property]float64{PropOpacity: 0, PropScale: 0.98},
				Duration: 0.4,
			},
		}
	}

	return Section{
		ID:     SectionCTA,
		Margin: revealMargin,
		Tracks: []Track{
			{Property: PropScale, Signal: SignalProgress, Range: MustRange([]float64{0, 0.5, 1}, []float64{0.8, 1, 0.95}), Spring: &scrollSpring},
			{Property: PropOpacity, Signal: SignalProgress, Range: MustRange([]float64{0, 0.2, 0.8, 1}, []float64{0, 1, 1, 0.8}), Spring: &scrollSpring},
		},
		Entrance: &Entrance{
			From:     map[Property]float64{PropOpacity: 0, PropY: 30},
			Duration: 0.6,
			Delay:    0.2,
			Stagger:  0.1,
		},
	}
}

// ClientConfig serialises a section for the browser-side runner.
func ClientConfig(s Section) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
