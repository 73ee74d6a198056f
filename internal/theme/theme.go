// Package theme loads the site's design tokens (palette, fonts, keyframes
// and named animations) and renders them as a stylesheet.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed theme.yaml
var defaultTheme []byte

// Sentinel errors returned by Parse.
var (
	ErrInvalidColor    = errors.New("invalid color")
	ErrUnknownKeyframe = errors.New("unknown keyframe")
	ErrDuplicateToken  = errors.New("duplicate token")
)

var hexColor = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// Color is a named palette token.
type Color struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Font is a named font stack.
type Font struct {
	Name     string   `yaml:"name"`
	Families []string `yaml:"families"`
}

// Stop is one selector of a keyframe block, e.g. "0%" or "0%, 100%".
type Stop struct {
	At    string            `yaml:"at"`
	Style map[string]string `yaml:"style"`
}

// Keyframe is a named @keyframes definition.
type Keyframe struct {
	Name  string `yaml:"name"`
	Stops []Stop `yaml:"stops"`
}

// Animation binds a utility class name to a keyframe and the rest of the
// animation shorthand (duration, timing, iteration).
type Animation struct {
	Name     string `yaml:"name"`
	Keyframe string `yaml:"keyframe"`
	Value    string `yaml:"value"`
}

// Theme is the full set of design tokens.
type Theme struct {
	Colors     []Color     `yaml:"colors"`
	Fonts      []Font      `yaml:"fonts"`
	Keyframes  []Keyframe  `yaml:"keyframes"`
	Animations []Animation `yaml:"animations"`
}

// Load parses the theme embedded in the binary.
func Load() (*Theme, error) {
	return Parse(defaultTheme)
}

// Parse decodes and validates a theme document.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Color returns the value of the named color token.
func (t *Theme) Color(name string) (string, bool) {
	for _, c := range t.Colors {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

func (t *Theme) validate() error {
	colors := make(map[string]bool, len(t.Colors))
	for _, c := range t.Colors {
		if !hexColor.MatchString(c.Value) {
			return fmt.Errorf("color %q value %q: %w", c.Name, c.Value, ErrInvalidColor)
		}
		if colors[c.Name] {
			return fmt.Errorf("color %q: %w", c.Name, ErrDuplicateToken)
		}
		colors[c.Name] = true
	}

	keyframes := make(map[string]bool, len(t.Keyframes))
	for _, k := range t.Keyframes {
		if keyframes[k.Name] {
			return fmt.Errorf("keyframe %q: %w", k.Name, ErrDuplicateToken)
		}
		keyframes[k.Name] = true
	}

	for _, a := range t.Animations {
		if !keyframes[a.Keyframe] {
			return fmt.Errorf("animation %q references %q: %w", a.Name, a.Keyframe, ErrUnknownKeyframe)
		}
	}

	return nil
}
