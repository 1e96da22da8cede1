package ports

import (
	"context"

	"github.com/tmellor/maestro/internal/core/domain"
)

// ModelSearcher finds models on one backend and maps them into canonical
// cards. Implementations are self-contained per call and safe for concurrent
// use.
type ModelSearcher interface {
	Provider() domain.Provider
	Search(ctx context.Context, query string) ([]domain.ModelCard, error)
}

// ModelPuller downloads a model through an external package manager process.
type ModelPuller interface {
	Pull(ctx context.Context, model string) error
}
