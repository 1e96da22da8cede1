package registry

// CommandAction is one contributed command. Actions are plain comparable
// values so the builder can dedup on full-value equality.
type CommandAction struct {
	ID    string
	Title string
	Group string
}

// CommandBuilder collects contributed actions in first-seen order. An action
// already present, by equality, is silently dropped; it keeps its original
// position.
type CommandBuilder struct {
	seen    map[CommandAction]struct{}
	actions []CommandAction
}

func NewCommandBuilder() *CommandBuilder {
	return &CommandBuilder{
		seen: make(map[CommandAction]struct{}),
	}
}

// Extend appends each proposed action unless an equal one was already added.
func (b *CommandBuilder) Extend(actions ...CommandAction) {
	for _, action := range actions {
		if _, dup := b.seen[action]; dup {
			continue
		}
		b.seen[action] = struct{}{}
		b.actions = append(b.actions, action)
	}
}

// Actions returns the collected actions in insertion order.
func (b *CommandBuilder) Actions() []CommandAction {
	out := make([]CommandAction, len(b.actions))
	copy(out, b.actions)
	return out
}

func (b *CommandBuilder) Len() int {
	return len(b.actions)
}
