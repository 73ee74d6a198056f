package model

// Feature describes one capability card in the features grid.
// Description may contain inline Markdown emphasis.
type Feature struct {
	Title       string
	Description string
	Icon        string
	Accent      Accent
}
