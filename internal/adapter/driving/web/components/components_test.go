package components

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	vm "github.com/Grandillionaire/council-landing/internal/adapter/driving/web/viewmodel"
	"github.com/Grandillionaire/council-landing/internal/content"
)

// --- Test helpers ---

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func parse(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(render(t, n)))
	require.NoError(t, err)
	return doc
}

// findAll returns every element with the given tag, in document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// --- Logo ---

func TestLogo_DimensionsMatchPreset(t *testing.T) {
	tests := []struct {
		size LogoSize
		want int
	}{
		{LogoSmall, 24},
		{LogoMedium, 32},
		{LogoLarge, 40},
	}
	for _, tt := range tests {
		t.Run(string(tt.size), func(t *testing.T) {
			svgs := findAll(parse(t, Logo(tt.size, true)), "svg")
			require.Len(t, svgs, 1)
			assert.Equal(t, strconv.Itoa(tt.want), attr(svgs[0], "width"))
			assert.Equal(t, strconv.Itoa(tt.want), attr(svgs[0], "height"))
			assert.Equal(t, tt.want, tt.size.Pixels())
		})
	}
}

func TestLogo_WordmarkIffShowText(t *testing.T) {
	for _, size := range []LogoSize{LogoSmall, LogoMedium, LogoLarge} {
		with := text(parse(t, Logo(size, true)))
		assert.Contains(t, with, content.ProductName)
		assert.Contains(t, with, content.Tagline)

		without := render(t, Logo(size, false))
		assert.NotContains(t, without, content.ProductName+"<")
		assert.NotContains(t, without, content.Tagline)
	}
}

func TestLogo_DefaultsToMedium(t *testing.T) {
	for _, size := range []LogoSize{"", "xl"} {
		svgs := findAll(parse(t, Logo(size, true)), "svg")
		require.Len(t, svgs, 1)
		assert.Equal(t, "32", attr(svgs[0], "width"))
	}
}

func TestLogo_PentagonNodes(t *testing.T) {
	doc := parse(t, LogoMark(LogoLarge, false))

	// Five nodes with an inner highlight each, plus the hub.
	assert.Len(t, findAll(doc, "circle"), 11)
	// Five outline edges plus five spokes.
	assert.Len(t, findAll(doc, "line"), 10)

	gradients := findAll(doc, "linearGradient")
	require.Len(t, gradients, 1)
	assert.Equal(t, "logo-gradient-lg", attr(gradients[0], "id"))
}

func TestPlacedLogo_GradientScopedToPlacement(t *testing.T) {
	tests := []struct {
		placement string
		size      LogoSize
		wantID    string
	}{
		{"", LogoSmall, "logo-gradient-sm"},
		{"nav", LogoSmall, "logo-gradient-nav-sm"},
		{"footer", LogoSmall, "logo-gradient-footer-sm"},
		{"footer", "xl", "logo-gradient-footer-md"},
	}

	for _, tt := range tests {
		t.Run(tt.wantID, func(t *testing.T) {
			out := render(t, PlacedLogo(tt.placement, tt.size, false))
			gradients := findAll(parse(t, PlacedLogo(tt.placement, tt.size, false)), "linearGradient")
			require.Len(t, gradients, 1)
			assert.Equal(t, tt.wantID, attr(gradients[0], "id"))
			assert.Contains(t, out, `fill="url(#`+tt.wantID+`)"`)
		})
	}
}

func TestLogoMark_StandaloneDeclaresNamespace(t *testing.T) {
	assert.Contains(t, render(t, LogoMark(LogoSmall, true)), `xmlns="http://www.w3.org/2000/svg"`)
	assert.NotContains(t, render(t, LogoMark(LogoSmall, false)), "xmlns")
}

func TestLogoCompact(t *testing.T) {
	doc := parse(t, LogoCompact())

	svgs := findAll(doc, "svg")
	require.Len(t, svgs, 1)
	assert.Equal(t, "24", attr(svgs[0], "width"))
	assert.Contains(t, text(doc), "SC")
	assert.Len(t, findAll(doc, "circle"), 5)
}

func TestParseLogoSize(t *testing.T) {
	for _, s := range []string{"sm", "md", "lg"} {
		size, ok := ParseLogoSize(s)
		assert.True(t, ok)
		assert.Equal(t, LogoSize(s), size)
	}
	_, ok := ParseLogoSize("xl")
	assert.False(t, ok)
}

// --- Sections ---

func TestAdvisors_InitialMatchesName(t *testing.T) {
	advisors := []vm.AdvisorViewModel{}
	for _, a := range content.Advisors() {
		advisors = append(advisors, vm.AdvisorViewModel{Name: a.Name, Initial: a.Initial, Description: a.Description, Accent: string(a.Accent)})
	}

	doc := parse(t, Advisors(advisors))

	var cards []*html.Node
	for _, div := range findAll(doc, "div") {
		if hasClass(div, "advisor") {
			cards = append(cards, div)
		}
	}
	require.Len(t, cards, 5)

	for _, card := range cards {
		var initial, name string
		for _, div := range findAll(card, "div") {
			if hasClass(div, "advisor-initial") {
				initial = text(div)
			}
		}
		names := findAll(card, "h3")
		require.Len(t, names, 1)
		name = text(names[0])

		require.NotEmpty(t, name)
		assert.Equal(t, name[:1], initial, "advisor %s", name)
	}
}

func TestFeatures_RendersSanitizedDescription(t *testing.T) {
	out := render(t, Features([]vm.FeatureViewModel{
		{Title: "Private", DescriptionHTML: "data <em>never</em> leaves", Icon: "🔒", Accent: "larry"},
	}))

	assert.Contains(t, out, `id="features"`)
	assert.Contains(t, out, "data <em>never</em> leaves")
	assert.Contains(t, out, "border-larry")
	assert.Contains(t, out, "data-motion=")
}

func TestHero_InitialStyleIsFirstFrame(t *testing.T) {
	out := render(t, Hero("lead", vm.LinksViewModel{SourceRepo: "https://src", Deploy: "https://deploy"}))

	assert.Contains(t, out, `style="opacity:1;transform:translateY(0px)"`)
	assert.Contains(t, out, `href="https://deploy"`)
	assert.Contains(t, out, `href="#features"`)
}

func TestStepsEnhanced_ConnectorsBetweenSteps(t *testing.T) {
	steps := []vm.StepViewModel{
		{Ordinal: "01", Title: "a", HasNext: true},
		{Ordinal: "02", Title: "b", HasNext: true},
		{Ordinal: "03", Title: "c"},
	}

	out := render(t, StepsEnhanced(steps))
	assert.Equal(t, 2, strings.Count(out, `class="step-connector `))
	assert.Contains(t, out, `id="how"`)
	assert.Contains(t, out, "data-motion-target")

	classic := render(t, StepsClassic(steps))
	assert.NotContains(t, classic, "step-connector")
	assert.NotContains(t, classic, "data-motion-target")
}

func TestCTAEnhanced_RendersStats(t *testing.T) {
	stats := []vm.StatViewModel{{Label: "Deploy time", Value: "60s"}}
	doc := parse(t, CTAEnhanced(vm.LinksViewModel{SourceRepo: "https://src", Deploy: "https://deploy"}, stats))

	body := text(doc)
	assert.Contains(t, body, "60s")
	assert.Contains(t, body, "Deploy time")
	assert.Contains(t, body, content.CTABadge)

	var hrefs []string
	for _, a := range findAll(doc, "a") {
		hrefs = append(hrefs, attr(a, "href"))
	}
	assert.Equal(t, []string{"https://deploy", "https://src"}, hrefs)
}

func TestLayout_Metadata(t *testing.T) {
	meta := vm.MetaViewModel{
		Title:          "Title",
		Description:    "Desc",
		CanonicalURL:   "https://example.com/",
		OGTitle:        "OG",
		TwitterCard:    "summary_large_image",
		StructuredData: `{"@type":"SoftwareApplication"}`,
	}

	out := render(t, Layout(meta, g.Text("body")))

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>Title</title>")
	assert.Contains(t, out, `<meta property="og:title" content="OG">`)
	assert.Contains(t, out, `<meta name="twitter:card" content="summary_large_image">`)
	assert.Contains(t, out, `<script type="application/ld+json">{"@type":"SoftwareApplication"}</script>`)
	assert.Contains(t, out, `<link rel="canonical" href="https://example.com/">`)
	assert.Contains(t, out, MotionJSPath)
}
