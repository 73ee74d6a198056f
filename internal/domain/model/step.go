package model

// Step is one entry of the ordered "how it works" list.
type Step struct {
	Ordinal     string // "01", "02", ...
	Title       string
	Description string
	Accent      Accent
}

// Stat is a headline figure shown under the call-to-action.
type Stat struct {
	Label string
	Value string
}
