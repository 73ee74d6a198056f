package motion

import (
	"errors"
	"fmt"
	"maps"
	"math"
)

// ErrDuplicateSection is returned when mounting a section whose ID is
// already mounted.
var ErrDuplicateSection = errors.New("section already mounted")

// Frame is the input to one animation tick.
type Frame struct {
	ScrollY        float64
	ViewportHeight float64
	// Bounds holds the document extent of each mounted section. Sections
	// without bounds keep their scroll tracks running but cannot enter or
	// report progress.
	Bounds map[string]Rect
	DT     float64 // seconds since the previous frame
}

// Snapshot is the observable state of a mounted section.
type Snapshot struct {
	Entered bool
	Values  map[Property]float64
}

type trackState struct {
	spring  SpringState
	started bool
}

type sectionState struct {
	section Section
	latch   Latch
	tracks  []trackState
	values  map[Property]float64
}

// Sequencer advances the animation state of mounted sections frame by frame.
// It is not safe for concurrent use; one Sequencer models one document.
type Sequencer struct {
	sections map[string]*sectionState
	order    []string
}

// NewSequencer returns a Sequencer with the given sections mounted.
func NewSequencer(sections ...Section) (*Sequencer, error) {
	s := &Sequencer{sections: make(map[string]*sectionState)}
	for _, sec := range sections {
		if err := s.Mount(sec); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Mount registers a section with a fresh latch and no animation history.
func (s *Sequencer) Mount(sec Section) error {
	if _, ok := s.sections[sec.ID]; ok {
		return fmt.Errorf("mount %q: %w", sec.ID, ErrDuplicateSection)
	}

	s.sections[sec.ID] = &sectionState{
		section: sec,
		tracks:  make([]trackState, len(sec.Tracks)),
		values:  make(map[Property]float64, len(sec.Tracks)),
	}
	s.order = append(s.order, sec.ID)
	return nil
}

// Unmount discards all state of the section. It reports whether the section
// was mounted.
func (s *Sequencer) Unmount(id string) bool {
	if _, ok := s.sections[id]; !ok {
		return false
	}
	delete(s.sections, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Advance applies one frame to every mounted section, in mount order. It
// returns the IDs of sections whose entrance latch fired during this frame.
func (s *Sequencer) Advance(f Frame) []string {
	scrollY := f.ScrollY
	if scrollY < 0 || math.IsNaN(scrollY) {
		scrollY = 0
	}
	vp := Viewport{Top: scrollY, Height: f.ViewportHeight}

	var entered []string
	for _, id := range s.order {
		st := s.sections[id]
		rect, hasBounds := f.Bounds[id]

		if hasBounds && st.section.Entrance != nil && Intersects(rect, vp, st.section.Margin) {
			if st.latch.Fire() {
				entered = append(entered, id)
			}
		}

		progress := 0.0
		if hasBounds {
			progress = Progress(rect, vp)
		}

		for i, t := range st.section.Tracks {
			if t.Signal == SignalProgress && !hasBounds {
				continue
			}
			raw := t.Raw(scrollY, progress)
			ts := &st.tracks[i]

			if t.Spring == nil {
				st.values[t.Property] = raw
				continue
			}
			if !ts.started {
				ts.spring = NewSpringState(raw)
				ts.started = true
			} else {
				ts.spring.Step(*t.Spring, raw, f.DT)
			}
			st.values[t.Property] = ts.spring.Value
		}
	}

	return entered
}

// Snapshot returns the current state of a mounted section.
func (s *Sequencer) Snapshot(id string) (Snapshot, bool) {
	st, ok := s.sections[id]
	if !ok {
		return Snapshot{}, false
	}
	return Snapshot{Entered: st.latch.Fired(), Values: maps.Clone(st.values)}, true
}
