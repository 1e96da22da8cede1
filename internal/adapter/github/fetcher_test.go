package github

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmellor/maestro/internal/core/domain"
	"github.com/tmellor/maestro/internal/logger"
)

func testLogger() *logger.StyledLogger {
	_, styled, _, _ := logger.New(&logger.Config{Level: "error"})
	return styled
}

type repoFixture struct {
	FullName string `json:"full_name"`
	Archived bool   `json:"archived"`
}

func newAPIServer(t *testing.T, repos []repoFixture) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v3/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Authorization"), "ghp_test")
		_ = json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	})

	mux.HandleFunc("/api/v3/user/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		_ = json.NewEncoder(w).Encode(repos)
	})

	return httptest.NewServer(mux)
}

func newFetcher(t *testing.T, serverURL string) *Fetcher {
	t.Helper()
	return NewFetcher(testLogger(), WithBaseURL(serverURL+"/"))
}

func TestFetcher_EmptyTokenFailsBeforeAnyNetworkCall(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	fetcher := newFetcher(t, server.URL)

	for _, token := range []string{"", "   ", "\t\n"} {
		_, err := fetcher.Fetch(t.Context(), token)
		require.Error(t, err)

		var pe *domain.ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, domain.ErrKindPrecondition, pe.Kind)
	}

	assert.Zero(t, requests)
}

func TestFetcher_ArchivedRepositoriesAreDropped(t *testing.T) {
	server := newAPIServer(t, []repoFixture{
		{FullName: "octocat/current", Archived: false},
		{FullName: "octocat/retired", Archived: true},
		{FullName: "octocat/active", Archived: false},
	})
	defer server.Close()

	fetcher := newFetcher(t, server.URL)

	account, err := fetcher.Fetch(t.Context(), "ghp_test")
	require.NoError(t, err)

	assert.Equal(t, "octocat", account.Username)
	assert.Equal(t, []string{"octocat/current", "octocat/active"}, account.Repositories,
		"received order preserved, archived dropped")
}

func TestFetcher_NoRepositories(t *testing.T) {
	server := newAPIServer(t, []repoFixture{})
	defer server.Close()

	fetcher := newFetcher(t, server.URL)

	account, err := fetcher.Fetch(t.Context(), "ghp_test")
	require.NoError(t, err)
	assert.Equal(t, "octocat", account.Username)
	assert.Empty(t, account.Repositories)
}

func TestFetcher_ProfileFailureIsStatusError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/user", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := newFetcher(t, server.URL)

	_, err := fetcher.Fetch(t.Context(), "ghp_bad")
	require.Error(t, err)

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, domain.ErrKindStatus, pe.Kind)
	assert.Equal(t, http.StatusUnauthorized, pe.Status)
	assert.Contains(t, pe.Message, "fetching profile")
	assert.Contains(t, pe.Message, "Bad credentials")
}

func TestFetcher_RepositoryListingFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/user", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"login": "octocat"})
	})
	mux.HandleFunc("/api/v3/user/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "token scope missing"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	fetcher := newFetcher(t, server.URL)

	_, err := fetcher.Fetch(t.Context(), "ghp_test")
	require.Error(t, err)

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, domain.ErrKindStatus, pe.Kind)
	assert.Contains(t, pe.Message, "listing repositories")
}
