package motion

// Property is an animated visual property.
type Property string

const (
	PropOpacity Property = "opacity"
	PropY       Property = "y"      // vertical offset in pixels
	PropScale   Property = "scale"  // uniform scale factor
	PropRotate  Property = "rotate" // degrees
	PropHeight  Property = "height" // percent of the container
)

// Signal selects the scalar input a Track is driven by.
type Signal string

const (
	// SignalScroll is the document scroll offset in pixels.
	SignalScroll Signal = "scroll"
	// SignalProgress is the section's travel through the viewport in [0, 1].
	SignalProgress Signal = "progress"
)

// Track binds one property to a signal through a Range, with optional
// spring smoothing.
type Track struct {
	Property Property `json:"property"`
	Signal   Signal   `json:"signal"`
	Range    Range    `json:"range"`
	Spring   *Spring  `json:"spring,omitempty"`
}

// Raw returns the unsmoothed value of the track for the given signals.
func (t Track) Raw(scrollY, progress float64) float64 {
	if t.Signal == SignalProgress {
		return t.Range.At(progress)
	}
	return t.Range.At(scrollY)
}

// Entrance describes the one-shot reveal of a section's children. From is
// the hidden state; children animate to their natural state.
type Entrance struct {
	From     map[Property]float64 `json:"from"`
	Duration float64              `json:"duration,omitempty"` // seconds
	Delay    float64              `json:"delay,omitempty"`    // seconds before the first child
	Stagger  float64              `json:"stagger,omitempty"`  // seconds between children
	Spring   *Spring              `json:"spring,omitempty"`
}

// ChildDelay returns the start offset of the i-th child.
func (e Entrance) ChildDelay(i int) float64 {
	return e.Delay + float64(i)*e.Stagger
}

// Section is the animation description of one landing page block.
type Section struct {
	ID       string    `json:"id"`
	Margin   float64   `json:"margin"` // viewport margin in pixels; negative shrinks
	Tracks   []Track   `json:"tracks,omitempty"`
	Entrance *Entrance `json:"entrance,omitempty"`
}

// Initial evaluates the section's scroll-driven tracks at offset zero. These
// are the values of the first painted frame, so they can be rendered
// server-side without waiting for the script. Progress tracks are omitted:
// their first value depends on layout only the browser knows.
func (s Section) Initial() map[Property]float64 {
	values := make(map[Property]float64)
	for _, t := range s.Tracks {
		if t.Signal == SignalScroll {
			values[t.Property] = t.Raw(0, 0)
		}
	}
	return values
}
