package ports

import (
	"context"

	"github.com/tmellor/maestro/internal/core/domain"
)

// AccountFetcher resolves an authenticated user's identity and their
// non-archived repositories. A blank credential is a precondition failure,
// rejected before any network call.
type AccountFetcher interface {
	Fetch(ctx context.Context, token string) (domain.AccountRepos, error)
}
