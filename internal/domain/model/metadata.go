package model

// Metadata is the document-level description consumed by crawlers and
// social platforms.
type Metadata struct {
	Title         string
	Description   string
	Keywords      []string
	Author        string
	OGTitle       string
	OGDescription string
	OGType        string
	TwitterCard   string
	Robots        string
}
