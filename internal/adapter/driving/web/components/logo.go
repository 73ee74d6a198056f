package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Grandillionaire/council-landing/internal/content"
)

// LogoSize is one of the three logo presets.
type LogoSize string

const (
	LogoSmall  LogoSize = "sm"
	LogoMedium LogoSize = "md"
	LogoLarge  LogoSize = "lg"
)

// ParseLogoSize maps "sm", "md" or "lg" to a LogoSize.
func ParseLogoSize(s string) (LogoSize, bool) {
	switch LogoSize(s) {
	case LogoSmall, LogoMedium, LogoLarge:
		return LogoSize(s), true
	}
	return "", false
}

// Pixels returns the rendered edge length of the mark. Unknown sizes fall
// back to the medium preset.
func (s LogoSize) Pixels() int {
	switch s {
	case LogoSmall:
		return 24
	case LogoLarge:
		return 40
	default:
		return 32
	}
}

func (s LogoSize) normalize() LogoSize {
	if _, ok := ParseLogoSize(string(s)); ok {
		return s
	}
	return LogoMedium
}

func (s LogoSize) textClass() string {
	switch s {
	case LogoSmall:
		return "text-sm"
	case LogoLarge:
		return "text-2xl"
	default:
		return "text-xl"
	}
}

type point struct{ x, y float64 }

// The five advisor nodes, clockwise from the top.
var pentagon = [5]point{{20, 8}, {33, 15}, {29, 30}, {11, 30}, {7, 15}}

// Spokes end just short of the hub so the centre dot stays visible.
var spokeEnds = [5]point{{20, 18}, {22, 19}, {21, 22}, {19, 22}, {18, 19}}

// Logo renders the pentagon mark and, when showText is set, the wordmark.
// An empty or unknown size renders the medium preset.
func Logo(size LogoSize, showText bool) g.Node {
	return PlacedLogo("", size, showText)
}

// PlacedLogo is Logo for pages that show more than one mark of the same size.
// The placement is folded into the gradient id so each mark's fill resolves
// to its own definition.
func PlacedLogo(placement string, size LogoSize, showText bool) g.Node {
	size = size.normalize()

	return Div(Class("logo"),
		mark(size.Pixels(), gradientID(placement, size), true, false),
		g.If(showText,
			Div(Class("logo-text"),
				Span(Class("logo-name text-primary "+size.textClass()), g.Text(content.ProductName)),
				Span(Class("logo-tagline text-muted"), g.Text(content.Tagline)),
			),
		),
	)
}

func gradientID(placement string, size LogoSize) string {
	if placement == "" {
		return "logo-gradient-" + string(size)
	}
	return "logo-gradient-" + placement + "-" + string(size)
}

// LogoCompact renders the small mark with the "SC" monogram for narrow screens.
func LogoCompact() g.Node {
	return Div(Class("logo logo-compact"),
		mark(LogoSmall.Pixels(), "logo-gradient-compact", false, false),
		Span(Class("logo-monogram text-primary text-sm"), g.Text("SC")),
	)
}

// LogoMark renders only the vector mark. standalone adds the XML namespace so
// the output is a valid image/svg+xml document.
func LogoMark(size LogoSize, standalone bool) g.Node {
	size = size.normalize()
	return mark(size.Pixels(), gradientID("", size), true, standalone)
}

func mark(px int, gradient string, detailed, standalone bool) g.Node {
	fill := "url(#" + gradient + ")"
	edge := strconv.Itoa(px)

	nodes := []g.Node{
		g.Attr("width", edge),
		g.Attr("height", edge),
		g.Attr("viewBox", "0 0 40 40"),
		g.Attr("fill", "none"),
		g.If(standalone, g.Attr("xmlns", "http://www.w3.org/2000/svg")),
		g.Attr("role", "img"),
		g.Attr("aria-label", content.ProductName+" logo"),
		Class("logo-mark"),
	}

	// Pentagon outline.
	var outline []g.Node
	outline = append(outline, g.Attr("opacity", "0.3"))
	for i, p := range pentagon {
		q := pentagon[(i+1)%len(pentagon)]
		outline = append(outline, line(p, q, fill, "1.5", ""))
	}
	nodes = append(nodes, g.El("g", outline...))

	if detailed {
		nodes = append(nodes, circle(point{20, 20}, "2", fill, "0.4"))
		for i, p := range pentagon {
			nodes = append(nodes, line(p, spokeEnds[i], fill, "1.2", "0.3"))
		}
	}

	for _, p := range pentagon {
		nodes = append(nodes, circle(p, "3.5", fill, ""))
		if detailed {
			nodes = append(nodes, circle(p, "2.2", "white", "0.3"))
		}
	}

	nodes = append(nodes, g.El("defs",
		g.El("linearGradient",
			ID(gradient),
			g.Attr("x1", "0%"), g.Attr("y1", "0%"), g.Attr("x2", "100%"), g.Attr("y2", "100%"),
			g.El("stop", g.Attr("offset", "0%"), g.Attr("stop-color", "#C15F3C")),
			g.El("stop", g.Attr("offset", "100%"), g.Attr("stop-color", "#8B4513")),
		),
	))

	return g.El("svg", nodes...)
}

func line(from, to point, stroke, width, opacity string) g.Node {
	return g.El("line",
		g.Attr("x1", coord(from.x)), g.Attr("y1", coord(from.y)),
		g.Attr("x2", coord(to.x)), g.Attr("y2", coord(to.y)),
		g.Attr("stroke", stroke),
		g.Attr("stroke-width", width),
		g.If(opacity != "", g.Attr("opacity", opacity)),
	)
}

func circle(c point, r, fill, opacity string) g.Node {
	return g.El("circle",
		g.Attr("cx", coord(c.x)), g.Attr("cy", coord(c.y)),
		g.Attr("r", r),
		g.Attr("fill", fill),
		g.If(opacity != "", g.Attr("opacity", opacity)),
	)
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
