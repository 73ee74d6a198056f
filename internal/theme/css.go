package theme

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

// CSS renders the theme as a stylesheet: custom properties on :root,
// text/bg/border utilities per color, font utilities, @keyframes blocks and
// .animate-* classes. Output is deterministic.
func (t *Theme) CSS() string {
	var b strings.Builder

	b.WriteString(":root{")
	for _, c := range t.Colors {
		b.WriteString("--color-" + c.Name + ":" + c.Value + ";")
	}
	for _, f := range t.Fonts {
		b.WriteString("--font-" + f.Name + ":" + fontStack(f.Families) + ";")
	}
	b.WriteString("}\n")

	for _, c := range t.Colors {
		v := "var(--color-" + c.Name + ")"
		b.WriteString(".text-" + c.Name + "{color:" + v + "}\n")
		b.WriteString(".bg-" + c.Name + "{background-color:" + v + "}\n")
		b.WriteString(".border-" + c.Name + "{border-color:" + v + "}\n")
	}

	for _, f := range t.Fonts {
		b.WriteString(".font-" + f.Name + "{font-family:var(--font-" + f.Name + ")}\n")
	}

	if primary, ok := t.Color("primary"); ok {
		b.WriteString(".text-gradient-primary{background:linear-gradient(135deg," + primary + ",#8B4513);" +
			"-webkit-background-clip:text;background-clip:text;color:transparent}\n")
	}

	for _, k := range t.Keyframes {
		b.WriteString("@keyframes " + k.Name + "{")
		for _, s := range k.Stops {
			b.WriteString(s.At + "{")
			props := make([]string, 0, len(s.Style))
			for p := range s.Style {
				props = append(props, p)
			}
			slices.Sort(props)
			for _, p := range props {
				b.WriteString(p + ":" + s.Style[p] + ";")
			}
			b.WriteString("}")
		}
		b.WriteString("}\n")
	}

	for _, a := range t.Animations {
		b.WriteString(".animate-" + a.Name + "{animation:" + a.Keyframe + " " + a.Value + "}\n")
	}

	// Honour reduced-motion preferences for every named animation.
	b.WriteString("@media (prefers-reduced-motion:reduce){[class*=\"animate-\"]{animation:none}}\n")

	return b.String()
}

// ETag returns a strong entity tag for the rendered stylesheet.
func ETag(css string) string {
	sum := sha256.Sum256([]byte(css))
	return strconv.Quote(hex.EncodeToString(sum[:8]))
}

func fontStack(families []string) string {
	quoted := make([]string, len(families))
	for i, f := range families {
		if strings.ContainsRune(f, ' ') {
			f = "'" + f + "'"
		}
		quoted[i] = f
	}
	return strings.Join(quoted, ",")
}
