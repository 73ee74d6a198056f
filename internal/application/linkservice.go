// Package application holds the use cases that sit between the driving
// adapters and the driven ports.
package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Grandillionaire/council-landing/internal/domain/model"
	"github.com/Grandillionaire/council-landing/internal/domain/port/driven"
)

// Sentinel errors reported by LinkService.
var (
	// ErrForeignLink indicates an outbound link that is neither an in-page
	// anchor nor one of the fixed URLs.
	ErrForeignLink = errors.New("link is not one of the fixed outbound URLs")

	// ErrDeployMismatch indicates the deploy link would clone a repository
	// other than the source repository.
	ErrDeployMismatch = errors.New("deploy link does not clone the source repository")

	// ErrRepoUnavailable indicates the source repository exists but cannot be
	// cloned by visitors.
	ErrRepoUnavailable = errors.New("source repository is not public")

	// ErrRepoMoved indicates the source repository now lives at another URL.
	ErrRepoMoved = errors.New("source repository has moved")
)

// deployRepoParam is the query parameter carrying the repository to clone.
const deployRepoParam = "repository-url"

// PageAudit is the outcome of checking one rendered page.
type PageAudit struct {
	Page     string
	Links    []string // every anchor href in document order
	Problems []error
}

// OK reports whether the page passed every check.
func (a PageAudit) OK() bool {
	return len(a.Problems) == 0
}

// LinkService verifies that rendered pages only link to the fixed outbound
// URLs and that those URLs point where they should.
type LinkService struct {
	links   model.Links
	checker driven.RepoChecker
}

// NewLinkService creates a LinkService. checker may be nil, in which case
// CheckRemote is unavailable.
func NewLinkService(links model.Links, checker driven.RepoChecker) *LinkService {
	return &LinkService{
		links:   links,
		checker: checker,
	}
}

// AuditPage extracts every anchor from an HTML document and checks each one.
// The error return is reserved for unreadable input; link problems are
// collected in the audit.
func (s *LinkService) AuditPage(page string, r io.Reader) (PageAudit, error) {
	hrefs, err := ExtractLinks(r)
	if err != nil {
		return PageAudit{}, fmt.Errorf("reading %s: %w", page, err)
	}

	audit := PageAudit{Page: page, Links: hrefs}
	for _, href := range hrefs {
		if err := s.CheckLink(href); err != nil {
			audit.Problems = append(audit.Problems, err)
		}
	}

	// Every page must offer both ways out.
	for _, want := range s.links.All() {
		if !slices.Contains(hrefs, want) {
			audit.Problems = append(audit.Problems, fmt.Errorf("missing link to %s", want))
		}
	}

	return audit, nil
}

// CheckLink accepts in-page fragments and the fixed outbound URLs.
func (s *LinkService) CheckLink(href string) error {
	if strings.HasPrefix(href, "#") {
		return nil
	}
	if slices.Contains(s.links.All(), href) {
		return nil
	}
	return fmt.Errorf("%q: %w", href, ErrForeignLink)
}

// CheckDeploy verifies that the deploy link clones the source repository.
func (s *LinkService) CheckDeploy() error {
	u, err := url.Parse(s.links.Deploy)
	if err != nil {
		return fmt.Errorf("parsing deploy link: %w: %w", ErrDeployMismatch, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("deploy link scheme %q: %w", u.Scheme, ErrDeployMismatch)
	}

	got := u.Query().Get(deployRepoParam)
	if got != s.links.SourceRepo {
		return fmt.Errorf("%s=%q, want %q: %w", deployRepoParam, got, s.links.SourceRepo, ErrDeployMismatch)
	}
	return nil
}

// CheckRemote looks up the source repository through the RepoChecker and
// verifies it is public and has not moved.
func (s *LinkService) CheckRemote(ctx context.Context) (model.Repository, error) {
	if s.checker == nil {
		return model.Repository{}, errors.New("remote checks disabled: no repository checker configured")
	}

	fullName, err := SourceRepoName(s.links.SourceRepo)
	if err != nil {
		return model.Repository{}, err
	}

	repo, err := s.checker.LookupRepository(ctx, fullName)
	if err != nil {
		return model.Repository{}, err
	}

	if repo.Private {
		return repo, fmt.Errorf("%s: %w", fullName, ErrRepoUnavailable)
	}
	if repo.HTMLURL != "" && !strings.EqualFold(strings.TrimSuffix(repo.HTMLURL, "/"), s.links.SourceRepo) {
		return repo, fmt.Errorf("%s now at %s: %w", fullName, repo.HTMLURL, ErrRepoMoved)
	}
	if repo.Archived {
		slog.Warn("source repository is archived", "repo", fullName)
	}

	return repo, nil
}

// SourceRepoName converts a GitHub repository URL to its owner/name form.
func SourceRepoName(sourceURL string) (string, error) {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return "", fmt.Errorf("parsing source URL: %w", err)
	}
	if u.Host != "github.com" {
		return "", fmt.Errorf("source URL %q is not a GitHub repository", sourceURL)
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("source URL %q: expected github.com/owner/repo", sourceURL)
	}
	return parts[0] + "/" + parts[1], nil
}

// ExtractLinks returns the href of every <a> element in the document, in
// order. Anchors without an href are skipped.
func ExtractLinks(r io.Reader) ([]string, error) {
	var hrefs []string
	z := html.NewTokenizer(r)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return hrefs, nil
			}
			return nil, z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if atom.Lookup(name) != atom.A {
				continue
			}
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				if string(key) == "href" {
					hrefs = append(hrefs, string(val))
					break
				}
			}
		}
	}
}
