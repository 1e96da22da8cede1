// Package catalog fans a model search out across every configured provider.
package catalog

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tmellor/maestro/internal/core/domain"
	"github.com/tmellor/maestro/internal/core/ports"
	"github.com/tmellor/maestro/internal/logger"
)

// Aggregator runs one search per registered provider concurrently and
// concatenates the results in registration order. Providers share no state,
// so the only coordination needed is the join. The same logical model may
// appear under two providers; callers display what they get.
type Aggregator struct {
	logger    *logger.StyledLogger
	searchers []ports.ModelSearcher
}

func NewAggregator(log *logger.StyledLogger, searchers ...ports.ModelSearcher) *Aggregator {
	return &Aggregator{
		logger:    log,
		searchers: searchers,
	}
}

// Searchers returns the registered searchers in registration order.
func (a *Aggregator) Searchers() []ports.ModelSearcher {
	return a.searchers
}

// Search queries every provider and returns the combined cards. The first
// provider failure cancels the remaining searches and is returned as-is, so
// callers can still branch on its error kind.
func (a *Aggregator) Search(ctx context.Context, query string) ([]domain.ModelCard, error) {
	results := make([][]domain.ModelCard, len(a.searchers))

	g, gctx := errgroup.WithContext(ctx)
	for i, searcher := range a.searchers {
		g.Go(func() error {
			cards, err := searcher.Search(gctx, query)
			if err != nil {
				a.logger.WarnWithProvider("search failed", string(searcher.Provider()), "error", err)
				return err
			}
			results[i] = cards
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []domain.ModelCard
	for _, cards := range results {
		combined = append(combined, cards...)
	}

	a.logger.InfoWithCount("aggregated search results", len(combined), "query", query)
	return combined, nil
}
