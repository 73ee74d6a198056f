package model

import "fmt"

// Accent is a palette token used to tint a piece of copy.
type Accent string

const (
	AccentPrimary Accent = "primary"
	AccentNaval   Accent = "naval"
	AccentElon    Accent = "elon"
	AccentLarry   Accent = "larry"
	AccentAlex    Accent = "alex"
	AccentPavel   Accent = "pavel"
)

// Variant identifies one composition of the landing page.
type Variant string

const (
	// VariantClassic is the compact composition: inline steps and a plain CTA block.
	VariantClassic Variant = "classic"
	// VariantEnhanced adds the animated step connector, CTA badge and stats.
	VariantEnhanced Variant = "enhanced"
)

// Variants lists every known page variant in display order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantEnhanced}
}

// ParseVariant maps a variant name to its Variant. Matching is exact.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown page variant %q", s)
}
