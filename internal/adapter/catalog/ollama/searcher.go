// Package ollama talks to a local Ollama daemon: tag listing mapped into
// canonical model cards, and model pulls via the ollama CLI.
package ollama

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
	"github.com/tmellor/maestro/internal/util"
	"github.com/tmellor/maestro/pkg/format"
)

const (
	DefaultHost    = "http://localhost:11434"
	DefaultTimeout = 15 * time.Second

	tagsPath = "/api/tags"

	// Every local model is a text-generation model as far as the catalog
	// is concerned; the daemon doesn't report a pipeline.
	pipelineTag = "text-generation"
)

type tagsResponse struct {
	Models []tagEntry `json:"models"`
}

type tagEntry struct {
	Name    string          `json:"name"`
	Size    json.RawMessage `json:"size,omitempty"`
	Details *tagDetails     `json:"details,omitempty"`
}

type tagDetails struct {
	Family            string `json:"family,omitempty"`
	ParameterSize     string `json:"parameter_size,omitempty"`
	QuantizationLevel string `json:"quantization_level,omitempty"`
}

// Searcher lists a local daemon's tags and filters them by name.
type Searcher struct {
	httpClient *http.Client
	logger     *logger.StyledLogger
	host       string
}

// NewSearcher builds a searcher against hostOverride, or the default local
// daemon when the override is blank.
func NewSearcher(hostOverride string, timeout time.Duration, log *logger.StyledLogger) *Searcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Searcher{
		httpClient: provider.NewHTTPClient(timeout),
		logger:     log,
		host:       util.NormaliseHost(hostOverride, DefaultHost),
	}
}

func (s *Searcher) Provider() domain.Provider {
	return domain.ProviderOllama
}

// Host returns the effective daemon address.
func (s *Searcher) Host() string {
	return s.host
}

// Search lists the daemon's tags once and keeps models whose name contains
// query, case-insensitively, in the order the daemon returned them.
func (s *Searcher) Search(ctx context.Context, query string) ([]domain.ModelCard, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.host+tagsPath, nil)
	if err != nil {
		return nil, domain.NewProviderError(domain.ProviderOllama, domain.ErrKindPrecondition,
			fmt.Sprintf("invalid daemon address %q: %v", s.host, err), err)
	}
	req.Header.Set("Accept", provider.DefaultContentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, provider.TransportError(domain.ProviderOllama, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, provider.MaxResponseSize))
	if err != nil {
		return nil, provider.TransportError(domain.ProviderOllama, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := provider.FailureMessage(resp.StatusCode, raw)
		return nil, domain.NewStatusError(domain.ProviderOllama, resp.StatusCode,
			fmt.Sprintf("listing local models: %s", msg))
	}

	var tags tagsResponse
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, domain.NewProviderError(domain.ProviderOllama, domain.ErrKindDecode,
			fmt.Sprintf("unexpected tags response: %v", err), err)
	}

	needle := strings.ToLower(query)
	cards := make([]domain.ModelCard, 0, len(tags.Models))
	for _, model := range tags.Models {
		if !strings.Contains(strings.ToLower(model.Name), needle) {
			continue
		}
		cards = append(cards, domain.ModelCard{
			Provider:      domain.ProviderOllama,
			ID:            model.Name,
			PipelineTag:   pipelineTag,
			Tags:          buildTags(model),
			RequiresToken: false,
		})
	}

	s.logger.InfoWithCount("local models matched", len(cards), "query", query)
	return cards, nil
}

// buildTags keeps a fixed, most-specific-first order: family, parameter
// size, quantisation level, raw size. Absent fields are skipped, never
// reordered.
func buildTags(model tagEntry) []string {
	tags := make([]string, 0, 4)
	if d := model.Details; d != nil {
		if d.Family != "" {
			tags = append(tags, d.Family)
		}
		if d.ParameterSize != "" {
			tags = append(tags, d.ParameterSize)
		}
		if d.QuantizationLevel != "" {
			tags = append(tags, d.QuantizationLevel)
		}
	}
	if size := sizeTag(model.Size); size != "" {
		tags = append(tags, size)
	}
	return tags
}

// sizeTag accepts the daemon's size either as a pre-formatted string or as a
// raw byte count, which gets rendered human-readable.
func sizeTag(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var asBytes uint64
	if err := json.Unmarshal(raw, &asBytes); err == nil && asBytes > 0 {
		return format.Bytes(asBytes)
	}

	return ""
}
