package model

// Links holds the fixed outbound destinations of the site. Every call-to-action
// on every page variant points at one of these two URLs.
type Links struct {
	SourceRepo string
	Deploy     string
}

// All returns both outbound URLs.
func (l Links) All() []string {
	return []string{l.SourceRepo, l.Deploy}
}
