// Package app wires the provider adapters, the feature registry and the
// diagnostic CLI into one application.
package app

import (
	"fmt"

	"github.com/tmellor/maestro/internal/adapter/catalog"
	"github.com/tmellor/maestro/internal/adapter/catalog/ollama"
	"github.com/tmellor/maestro/internal/adapter/catalog/openrouter"
	"github.com/tmellor/maestro/internal/adapter/chat"
	"github.com/tmellor/maestro/internal/adapter/github"
	"github.com/tmellor/maestro/internal/adapter/registry"
	"github.com/tmellor/maestro/internal/config"
	"github.com/tmellor/maestro/internal/logger"
)

// Application owns the composed provider layer.
type Application struct {
	store  *config.Store
	logger *logger.StyledLogger

	aggregator *catalog.Aggregator
	puller     *ollama.Puller
	chatProxy  *chat.Proxy
	fetcher    *github.Fetcher

	host     *registry.Host
	nav      *registry.NavigationBuilder
	commands *registry.CommandBuilder
}

// New builds every adapter from the current configuration snapshot, then
// runs the feature composition pass.
func New(store *config.Store, log *logger.StyledLogger) (*Application, error) {
	cfg := store.Snapshot()

	ollamaSearcher := ollama.NewSearcher(cfg.Providers.Ollama.Host, cfg.Providers.Ollama.Timeout, log)
	openrouterSearcher := openrouter.NewSearcher(
		cfg.Providers.OpenRouter.Endpoint,
		cfg.Providers.OpenRouter.Timeout,
		cfg.Providers.OpenRouter.MaxResults,
		log,
	)

	var fetcherOpts []github.Option
	if cfg.Providers.GitHub.BaseURL != "" {
		fetcherOpts = append(fetcherOpts, github.WithBaseURL(cfg.Providers.GitHub.BaseURL))
	}
	if cfg.Providers.GitHub.Timeout > 0 {
		fetcherOpts = append(fetcherOpts, github.WithTimeout(cfg.Providers.GitHub.Timeout))
	}

	a := &Application{
		store:      store,
		logger:     log,
		aggregator: catalog.NewAggregator(log, ollamaSearcher, openrouterSearcher),
		puller:     ollama.NewPuller(cfg.Providers.Ollama.Host, log),
		chatProxy:  chat.NewProxy(chat.DefaultDescriptors(), cfg.Providers.Chat.Timeout, log),
		fetcher:    github.NewFetcher(log, fetcherOpts...),
		host:       registry.NewHost(),
		nav:        registry.NewNavigationBuilder(),
		commands:   registry.NewCommandBuilder(),
	}

	a.host.Register(
		catalogModule{},
		chatModule{},
		accountModule{},
		settingsModule{},
	)
	a.host.Compose(a.nav, a.commands)

	log.InfoWithCount("feature modules composed", len(a.host.Modules()),
		"commands", a.commands.Len())

	return a, nil
}

// Navigation returns the composed navigation entries for the shell.
func (a *Application) Navigation() []registry.NavigationEntry {
	return a.nav.Entries()
}

// Commands returns the composed command actions in contribution order.
func (a *Application) Commands() []registry.CommandAction {
	return a.commands.Actions()
}

// chatCredential picks the configured key for a chat backend.
func chatCredential(cfg config.Config, backend string) (string, error) {
	switch backend {
	case chat.BackendOpenAI:
		return cfg.Providers.Chat.OpenAIKey, nil
	case chat.BackendAnthropic:
		return cfg.Providers.Chat.AnthropicKey, nil
	default:
		return "", fmt.Errorf("unknown chat backend %q", backend)
	}
}
