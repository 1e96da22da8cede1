package app

import (
	"github.com/tmellor/maestro/internal/adapter/registry"
)

// Command action IDs, shared between the feature modules that contribute
// them and the dispatch table that runs them.
const (
	ActionModelsSearch = "models.search"
	ActionModelsPull   = "models.pull"
	ActionChatSend     = "chat.send"
	ActionAccountRepos = "account.repos"
	ActionConfigShow   = "config.show"
)

// catalogModule contributes model discovery: search across providers and
// local pulls.
type catalogModule struct{}

func (catalogModule) Name() string { return "catalog" }

func (catalogModule) ContributeNavigation(builder *registry.NavigationBuilder) {
	builder.Add(registry.NavigationEntry{ID: "models", Title: "Models", Icon: "cube"})
}

func (catalogModule) ContributeCommands(builder *registry.CommandBuilder) {
	builder.Extend(
		registry.CommandAction{ID: ActionModelsSearch, Title: "Search models", Group: "models"},
		registry.CommandAction{ID: ActionModelsPull, Title: "Pull a local model", Group: "models"},
	)
}

// chatModule contributes the chat round-trip command. It adds no navigation;
// the chat surface belongs to the shell.
type chatModule struct{}

func (chatModule) Name() string { return "chat" }

func (chatModule) ContributeCommands(builder *registry.CommandBuilder) {
	builder.Extend(
		registry.CommandAction{ID: ActionChatSend, Title: "Send a chat completion", Group: "chat"},
	)
}

// accountModule contributes the identity/repository listing.
type accountModule struct{}

func (accountModule) Name() string { return "account" }

func (accountModule) ContributeNavigation(builder *registry.NavigationBuilder) {
	builder.Add(registry.NavigationEntry{ID: "account", Title: "Account", Icon: "person"})
}

func (accountModule) ContributeCommands(builder *registry.CommandBuilder) {
	builder.Extend(
		registry.CommandAction{ID: ActionAccountRepos, Title: "List repositories", Group: "account"},
	)
}

// settingsModule contributes the effective-config dump.
type settingsModule struct{}

func (settingsModule) Name() string { return "settings" }

func (settingsModule) ContributeNavigation(builder *registry.NavigationBuilder) {
	builder.Add(registry.NavigationEntry{ID: "settings", Title: "Settings", Icon: "gear"})
}

func (settingsModule) ContributeCommands(builder *registry.CommandBuilder) {
	builder.Extend(
		registry.CommandAction{ID: ActionConfigShow, Title: "Show effective configuration", Group: "settings"},
	)
}
