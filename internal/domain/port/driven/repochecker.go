package driven

import (
	"context"
	"errors"

	"github.com/Grandillionaire/council-landing/internal/domain/model"
)

// ErrRepoNotFound indicates the repository does not exist or is not visible
// to the caller.
var ErrRepoNotFound = errors.New("repository not found")

// RepoChecker defines the driven port for looking up the source repository
// the landing page links to.
// LookupRepository returns ErrRepoNotFound if the repository is missing.
type RepoChecker interface {
	LookupRepository(ctx context.Context, fullName string) (model.Repository, error)
}
