// Package commands implements the linkcheck CLI: it renders or fetches every
// page variant and verifies its outbound links.
package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	githubadapter "github.com/Grandillionaire/council-landing/internal/adapter/driven/github"
	"github.com/Grandillionaire/council-landing/internal/adapter/driving/web"
	"github.com/Grandillionaire/council-landing/internal/adapter/driving/web/pages"
	"github.com/Grandillionaire/council-landing/internal/application"
	"github.com/Grandillionaire/council-landing/internal/config"
	"github.com/Grandillionaire/council-landing/internal/content"
	"github.com/Grandillionaire/council-landing/internal/domain/model"
	"github.com/Grandillionaire/council-landing/internal/domain/port/driven"
)

// errAuditFailed is returned once every problem has been printed.
var errAuditFailed = errors.New("link audit failed")

type options struct {
	remote  bool
	siteURL string
	token   string
	timeout time.Duration
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the linkcheck command.
func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "linkcheck",
		Short: "Verify every outbound link on every landing page variant",
		Long: "linkcheck renders each page variant (or fetches it from --url), checks that\n" +
			"every link is an in-page anchor or one of the fixed outbound URLs, and that\n" +
			"the deploy link clones the source repository. --remote also confirms the\n" +
			"source repository is public on GitHub.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			return run(ctx, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.remote, "remote", false, "also look up the source repository on GitHub")
	cmd.Flags().StringVar(&opts.siteURL, "url", "", "audit a running site at this base URL instead of rendering in-process")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub token for --remote (default $LANDING_GITHUB_TOKEN)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall deadline")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var checker driven.RepoChecker
	if opts.remote {
		token := opts.token
		if token == "" {
			token = cfg.GitHubToken
		}
		checker = githubadapter.NewClient(token)
	}
	svc := application.NewLinkService(content.Links(), checker)

	failed := false
	report := func(format string, args ...any) {
		_, _ = fmt.Fprintf(out, format+"\n", args...)
	}

	for _, v := range model.Variants() {
		doc, err := loadPage(ctx, opts.siteURL, cfg.BaseURL, v)
		if err != nil {
			return err
		}

		audit, err := svc.AuditPage(string(v), doc)
		if err != nil {
			return err
		}

		if audit.OK() {
			report("ok    %s (%d links)", audit.Page, len(audit.Links))
			continue
		}
		failed = true
		for _, p := range audit.Problems {
			report("FAIL  %s: %v", audit.Page, p)
		}
	}

	if err := svc.CheckDeploy(); err != nil {
		failed = true
		report("FAIL  deploy: %v", err)
	} else {
		report("ok    deploy clones %s", content.Links().SourceRepo)
	}

	if opts.remote {
		repo, err := svc.CheckRemote(ctx)
		if err != nil {
			failed = true
			report("FAIL  remote: %v", err)
		} else {
			report("ok    remote %s (default branch %s)", repo.FullName, repo.DefaultBranch)
		}
	}

	if failed {
		return errAuditFailed
	}
	return nil
}

// loadPage renders the variant in-process, or fetches it when siteURL is set.
func loadPage(ctx context.Context, siteURL, baseURL string, v model.Variant) (io.Reader, error) {
	if siteURL == "" {
		page, err := web.NewLandingViewModel(v, baseURL)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := pages.Landing(page).Render(ctx, &buf); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", v, err)
		}
		return &buf, nil
	}

	target := strings.TrimSuffix(siteURL, "/") + "/variants/" + string(v)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", target, resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	return &buf, nil
}
