package catalog

import (
	"context"
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

type stubSearcher struct {
	provider domain.Provider
	cards    []domain.ModelCard
	err      error
}

func (s *stubSearcher) Provider() domain.Provider {
	return s.provider
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]domain.ModelCard, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cards, nil
}

func TestAggregator_CombinesInRegistrationOrder(t *testing.T) {
	first := &stubSearcher{
		provider: domain.ProviderOllama,
		cards: []domain.ModelCard{
			{Provider: domain.ProviderOllama, ID: "llama2:7b"},
		},
	}
	second := &stubSearcher{
		provider: domain.ProviderOpenRouter,
		cards: []domain.ModelCard{
			{Provider: domain.ProviderOpenRouter, ID: "acme/llama"},
			{Provider: domain.ProviderOpenRouter, ID: "acme/llama-chat"},
		},
	}

	agg := NewAggregator(testLogger(), first, second)

	cards, err := agg.Search(t.Context(), "llama")
	require.NoError(t, err)
	require.Len(t, cards, 3)

	assert.Equal(t, "llama2:7b", cards[0].ID)
	assert.Equal(t, "acme/llama", cards[1].ID)
	assert.Equal(t, "acme/llama-chat", cards[2].ID)
}

func TestAggregator_DuplicateLogicalModelsAreKept(t *testing.T) {
	first := &stubSearcher{
		provider: domain.ProviderOllama,
		cards:    []domain.ModelCard{{Provider: domain.ProviderOllama, ID: "mistral:7b"}},
	}
	second := &stubSearcher{
		provider: domain.ProviderOpenRouter,
		cards:    []domain.ModelCard{{Provider: domain.ProviderOpenRouter, ID: "mistralai/mistral-7b"}},
	}

	agg := NewAggregator(testLogger(), first, second)

	cards, err := agg.Search(t.Context(), "mistral")
	require.NoError(t, err)
	assert.Len(t, cards, 2, "no cross-provider dedup")
}

func TestAggregator_ProviderFailurePropagatesWithKind(t *testing.T) {
	healthy := &stubSearcher{provider: domain.ProviderOpenRouter}
	failing := &stubSearcher{
		provider: domain.ProviderOllama,
		err:      domain.NewStatusError(domain.ProviderOllama, 500, "daemon on fire"),
	}

	agg := NewAggregator(testLogger(), healthy, failing)

	_, err := agg.Search(t.Context(), "anything")
	require.Error(t, err)

	kind, ok := domain.ErrorKindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrKindStatus, kind)
}

func TestAggregator_NoSearchers(t *testing.T) {
	agg := NewAggregator(testLogger())

	cards, err := agg.Search(t.Context(), "anything")
	require.NoError(t, err)
	assert.Empty(t, cards)
}
