package model

// Advisor is one member of the advisory council shown in the advisors grid.
type Advisor struct {
	Name        string
	Accent      Accent
	Description string
	Initial     string // first character of Name
}
