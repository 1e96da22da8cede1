package domain

// Provider identifies one external backend with its own auth scheme and
// response shape.
type Provider string

const (
	ProviderOllama     Provider = "ollama"
	ProviderOpenRouter Provider = "openrouter"
	ProviderGitHub     Provider = "github"
)

// ModelCard is the canonical, provider-agnostic description of one
// discoverable model. Cards are built fresh per search call and never mutated;
// IDs are unique only within a single search response.
type ModelCard struct {
	Provider      Provider `json:"provider"`
	ID            string   `json:"id"`
	Author        string   `json:"author,omitempty"`
	PipelineTag   string   `json:"pipeline_tag,omitempty"`
	Tags          []string `json:"tags"`
	Likes         *int64   `json:"likes,omitempty"`
	Downloads     *int64   `json:"downloads,omitempty"`
	RequiresToken bool     `json:"requires_token"`
	Description   string   `json:"description,omitempty"`
}
