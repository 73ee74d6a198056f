package model

// Repository is the public state of the source repository the landing page
// links to.
type Repository struct {
	FullName      string
	Owner         string
	Name          string
	HTMLURL       string
	DefaultBranch string
	Private       bool
	Archived      bool
}
