package web

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New()

	// Copy is a single line of prose; only inline emphasis survives.
	htmlSanitizer = bluemonday.NewPolicy()
	htmlSanitizer.AllowElements("em", "strong", "code")
}

// RenderInline converts a single line of Markdown to sanitized inline HTML.
// The paragraph wrapper goldmark emits is removed so the result can be placed
// inside an existing <p> or <h*>. Returns empty string for empty input.
func RenderInline(src string) string {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return htmlSanitizer.Sanitize(src)
	}

	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")

	return htmlSanitizer.Sanitize(out)
}
