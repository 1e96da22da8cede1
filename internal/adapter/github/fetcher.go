// Package github resolves the authenticated user's identity and their
// repositories through the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/tmellor/maestro/internal/core/domain"
	"github.com/tmellor/maestro/internal/logger"
)

const (
	DefaultTimeout = 30 * time.Second

	reposPerPage = 100
	reposSort    = "updated"
)

// Fetcher lists the authenticated user's non-archived repositories. Each
// Fetch performs two sequential calls: the user profile, then the repository
// listing.
type Fetcher struct {
	logger  *logger.StyledLogger
	baseURL string
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBaseURL points the fetcher at a different API root (enterprise
// installs, test servers). The URL must end with a slash for go-github.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

func NewFetcher(log *logger.StyledLogger, opts ...Option) *Fetcher {
	f := &Fetcher{
		logger:  log,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the user's login and their non-archived "owner/name"
// repositories, most recently updated first. A blank token is a
// precondition failure; nothing goes on the wire.
func (f *Fetcher) Fetch(ctx context.Context, token string) (domain.AccountRepos, error) {
	if strings.TrimSpace(token) == "" {
		return domain.AccountRepos{}, domain.NewProviderError(domain.ProviderGitHub,
			domain.ErrKindPrecondition, "no access token configured", nil)
	}

	client, err := f.newClient(ctx, token)
	if err != nil {
		return domain.AccountRepos{}, err
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return domain.AccountRepos{}, f.wrapError("fetching profile", err)
	}

	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		Sort:        reposSort,
		ListOptions: gh.ListOptions{PerPage: reposPerPage},
	}

	var names []string
	for {
		repos, resp, err := client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return domain.AccountRepos{}, f.wrapError("listing repositories", err)
		}

		for _, repo := range repos {
			if repo.GetArchived() {
				continue
			}
			names = append(names, repo.GetFullName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	account := domain.AccountRepos{
		Username:     user.GetLogin(),
		Repositories: names,
	}

	f.logger.InfoWithCount("repositories fetched", len(names), "user", account.Username)
	return account, nil
}

func (f *Fetcher) newClient(ctx context.Context, token string) (*gh.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = f.timeout

	client := gh.NewClient(tc)
	if f.baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(f.baseURL, f.baseURL)
		if err != nil {
			return nil, domain.NewProviderError(domain.ProviderGitHub, domain.ErrKindPrecondition,
				fmt.Sprintf("invalid API base URL %q: %v", f.baseURL, err), err)
		}
	}
	return client, nil
}

// wrapError maps go-github failures onto the shared taxonomy: API error
// responses keep their status and message, everything else is a transport
// failure (deadline expiry included).
func (f *Fetcher) wrapError(operation string, err error) *domain.ProviderError {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		msg := ghErr.Message
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", ghErr.Response.StatusCode)
		}
		return domain.NewStatusError(domain.ProviderGitHub, ghErr.Response.StatusCode,
			fmt.Sprintf("%s: %s", operation, msg))
	}

	kind := domain.ErrKindTransport
	if errors.Is(err, context.DeadlineExceeded) {
		kind = domain.ErrKindDeadline
	}
	return domain.NewProviderError(domain.ProviderGitHub, kind,
		fmt.Sprintf("%s: %v", operation, err), err)
}
