package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Grandillionaire/council-landing/internal/domain/motion"
)

// animated returns the attributes that register a section with motion.js:
// its anchor ID and its serialised animation config.
func animated(sec motion.Section) g.Node {
	cfg, err := motion.ClientConfig(sec)
	if err != nil {
		// Without config the section simply stays static.
		return ID(sec.ID)
	}
	return g.Group{ID(sec.ID), g.Attr("data-motion", cfg)}
}

// reveal marks an element as a child of its section's entrance animation.
// Children animate in document order.
func reveal() g.Node {
	return g.Attr("data-reveal")
}

// trackTarget marks the element whose style the section's scroll tracks drive.
// initial is the first-frame style rendered before any script runs.
func trackTarget(initial string) g.Node {
	return g.Group{
		g.Attr("data-motion-target"),
		g.If(initial != "", g.Attr("style", initial)),
	}
}
