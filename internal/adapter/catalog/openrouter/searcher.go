// Package openrouter searches the public OpenRouter model catalog. The
// listing endpoint is unauthenticated; using any returned model requires a
// token, which the cards flag per-provider.
package openrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tmellor/maestro/internal/adapter/provider"
	"github.com/tmellor/maestro/internal/core/domain"
	"github.com/tmellor/maestro/internal/logger"
)

const (
	DefaultEndpoint   = "https://openrouter.ai/api/v1/models"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxResults = 50

	// Display names read "Author: Model"; a blank first segment still
	// needs something to show.
	unknownAuthor = "no author"
)

type listResponse struct {
	Data []catalogEntry `json:"data"`
}

type catalogEntry struct {
	ID           string        `json:"id"`
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description,omitempty"`
	Architecture *architecture `json:"architecture,omitempty"`
}

type architecture struct {
	Modality         string   `json:"modality,omitempty"`
	InputModalities  []string `json:"input_modalities,omitempty"`
	OutputModalities []string `json:"output_modalities,omitempty"`
}

// Searcher lists the public catalog and filters it client-side; the endpoint
// has no server-side search worth leaning on.
type Searcher struct {
	httpClient *http.Client
	logger     *logger.StyledLogger
	endpoint   string
	maxResults int
}

func NewSearcher(endpoint string, timeout time.Duration, maxResults int, log *logger.StyledLogger) *Searcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Searcher{
		httpClient: provider.NewHTTPClient(timeout),
		logger:     log,
		endpoint:   endpoint,
		maxResults: maxResults,
	}
}

func (s *Searcher) Provider() domain.Provider {
	return domain.ProviderOpenRouter
}

// Search keeps models whose id, display name or description contains query
// case-insensitively. Matches stay in catalog order, truncated to the first
// maxResults; there is no relevance scoring.
func (s *Searcher) Search(ctx context.Context, query string) ([]domain.ModelCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, domain.NewProviderError(domain.ProviderOpenRouter, domain.ErrKindPrecondition,
			fmt.Sprintf("invalid catalog endpoint %q: %v", s.endpoint, err), err)
	}
	req.Header.Set("Accept", provider.DefaultContentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, provider.TransportError(domain.ProviderOpenRouter, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, provider.MaxResponseSize))
	if err != nil {
		return nil, provider.TransportError(domain.ProviderOpenRouter, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := provider.FailureMessage(resp.StatusCode, raw)
		return nil, domain.NewStatusError(domain.ProviderOpenRouter, resp.StatusCode,
			fmt.Sprintf("listing catalog models: %s", msg))
	}

	var listing listResponse
	if err := json.Unmarshal(raw, &listing); err != nil {
		return nil, domain.NewProviderError(domain.ProviderOpenRouter, domain.ErrKindDecode,
			fmt.Sprintf("unexpected catalog response: %v", err), err)
	}

	needle := strings.ToLower(query)
	cards := make([]domain.ModelCard, 0, s.maxResults)
	for _, entry := range listing.Data {
		if !matches(entry, needle) {
			continue
		}
		cards = append(cards, domain.ModelCard{
			Provider:      domain.ProviderOpenRouter,
			ID:            entry.ID,
			Author:        deriveAuthor(entry.Name),
			Tags:          buildTags(entry.Architecture),
			RequiresToken: true,
			Description:   entry.Description,
		})
		if len(cards) >= s.maxResults {
			break
		}
	}

	s.logger.InfoWithCount("catalog models matched", len(cards), "query", query)
	return cards, nil
}

// matches checks id OR name OR description; a missing field simply can't
// match, it doesn't exclude the entry.
func matches(entry catalogEntry, needle string) bool {
	return strings.Contains(strings.ToLower(entry.ID), needle) ||
		strings.Contains(strings.ToLower(entry.Name), needle) ||
		strings.Contains(strings.ToLower(entry.Description), needle)
}

// deriveAuthor takes the first segment of a "Author: Model" display name.
func deriveAuthor(name string) string {
	author, _, _ := strings.Cut(name, ":")
	author = strings.TrimSpace(author)
	if author == "" {
		return unknownAuthor
	}
	return author
}

// buildTags places the coarse modality label first, then every input and
// output modality lowercased with an input:/output: prefix, preserving each
// list's original order.
func buildTags(arch *architecture) []string {
	if arch == nil {
		return []string{}
	}

	tags := make([]string, 0, 1+len(arch.InputModalities)+len(arch.OutputModalities))
	if arch.Modality != "" {
		tags = append(tags, arch.Modality)
	}
	for _, modality := range arch.InputModalities {
		tags = append(tags, "input:"+strings.ToLower(modality))
	}
	for _, modality := range arch.OutputModalities {
		tags = append(tags, "output:"+strings.ToLower(modality))
	}
	return tags
}
