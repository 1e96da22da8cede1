package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmellor/maestro/internal/config"
	"github.com/tmellor/maestro/internal/logger"
)

func newTestApp(t *testing.T) *Application {
	t.Helper()
	_, styled, _, err := logger.New(&logger.Config{Level: "error"})
	require.NoError(t, err)

	application, err := New(config.NewStore(config.DefaultConfig()), styled)
	require.NoError(t, err)
	return application
}

func TestNew_ComposesAllFeatureModules(t *testing.T) {
	application := newTestApp(t)

	var ids []string
	for _, action := range application.Commands() {
		ids = append(ids, action.ID)
	}
	assert.Equal(t, []string{
		ActionModelsSearch,
		ActionModelsPull,
		ActionChatSend,
		ActionAccountRepos,
		ActionConfigShow,
	}, ids, "contribution order follows module registration order")

	var navIDs []string
	for _, entry := range application.Navigation() {
		navIDs = append(navIDs, entry.ID)
	}
	assert.Equal(t, []string{"models", "account", "settings"}, navIDs)
}

func TestRootCommand_MaterialisesContributedActions(t *testing.T) {
	application := newTestApp(t)

	root := application.RootCommand()

	expect := map[string][]string{
		"models":   {"search", "pull"},
		"chat":     {"send"},
		"account":  {"repos"},
		"settings": {"show"},
	}

	for group, subs := range expect {
		groupCmd, _, err := root.Find([]string{group})
		require.NoError(t, err, "group %s", group)
		for _, sub := range subs {
			found := false
			for _, c := range groupCmd.Commands() {
				if c.Name() == sub {
					found = true
					break
				}
			}
			assert.True(t, found, "command %s %s", group, sub)
		}
	}
}

func TestChatCredentialSelection(t *testing.T) {
	cfg := *config.DefaultConfig()
	cfg.Providers.Chat.OpenAIKey = "sk-openai"
	cfg.Providers.Chat.AnthropicKey = "sk-ant"

	key, err := chatCredential(cfg, "openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-openai", key)

	key, err = chatCredential(cfg, "anthropic")
	require.NoError(t, err)
	assert.Equal(t, "sk-ant", key)

	_, err = chatCredential(cfg, "mystery")
	assert.Error(t, err)
}
