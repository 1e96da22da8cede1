package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandBuilder_ExtendDedupsByEquality(t *testing.T) {
	builder := NewCommandBuilder()

	search := CommandAction{ID: "models.search", Title: "Search models", Group: "models"}
	pull := CommandAction{ID: "models.pull", Title: "Pull a model", Group: "models"}
	send := CommandAction{ID: "chat.send", Title: "Send a chat completion", Group: "chat"}

	builder.Extend(search, pull)
	builder.Extend(pull, send, search)

	assert.Equal(t, []CommandAction{search, pull, send}, builder.Actions(),
		"each distinct action exactly once, first-seen order")
}

func TestCommandBuilder_DifferentTitleIsDifferentAction(t *testing.T) {
	builder := NewCommandBuilder()

	builder.Extend(CommandAction{ID: "models.search", Title: "Search"})
	builder.Extend(CommandAction{ID: "models.search", Title: "Find"})

	assert.Equal(t, 2, builder.Len(), "equality covers the full action value")
}

func TestCommandBuilder_FirstOccurrenceKeepsItsPosition(t *testing.T) {
	builder := NewCommandBuilder()

	a := CommandAction{ID: "a"}
	b := CommandAction{ID: "b"}

	builder.Extend(a)
	builder.Extend(b)
	builder.Extend(a)

	actions := builder.Actions()
	assert.Equal(t, "a", actions[0].ID)
	assert.Equal(t, "b", actions[1].ID)
}

func TestCommandBuilder_ActionsReturnsACopy(t *testing.T) {
	builder := NewCommandBuilder()
	builder.Extend(CommandAction{ID: "a"})

	actions := builder.Actions()
	actions[0].ID = "mutated"

	assert.Equal(t, "a", builder.Actions()[0].ID)
}

func TestNavigationBuilder_SameContract(t *testing.T) {
	builder := NewNavigationBuilder()

	models := NavigationEntry{ID: "models", Title: "Models", Icon: "cube"}
	account := NavigationEntry{ID: "account", Title: "Account", Icon: "person"}

	builder.Add(models)
	builder.Add(account, models)

	assert.Equal(t, []NavigationEntry{models, account}, builder.Entries())
}
