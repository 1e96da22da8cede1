// Package registry composes independently written feature modules into one
// application. Modules contribute navigation entries and commands through
// capability interfaces; the host never enumerates module kinds.
package registry

// FeatureModule is the minimal contract every module satisfies. The
// contribution hooks are optional capabilities discovered by type assertion,
// so a module that contributes nothing implements nothing extra.
type FeatureModule interface {
	Name() string
}

// NavigationContributor is implemented by modules that add navigation
// destinations.
type NavigationContributor interface {
	ContributeNavigation(builder *NavigationBuilder)
}

// CommandContributor is implemented by modules that add commands.
type CommandContributor interface {
	ContributeCommands(builder *CommandBuilder)
}

// Host holds registered modules and runs the composition pass.
type Host struct {
	modules []FeatureModule
}

func NewHost() *Host {
	return &Host{}
}

// Register appends a module. Registration order decides both hook order and
// dedup precedence during composition.
func (h *Host) Register(modules ...FeatureModule) {
	h.modules = append(h.modules, modules...)
}

func (h *Host) Modules() []FeatureModule {
	return h.modules
}

// Compose invokes each module's hooks once, in registration order. A module
// only ever sees the builders, never another module's contributions.
func (h *Host) Compose(nav *NavigationBuilder, commands *CommandBuilder) {
	for _, module := range h.modules {
		if contributor, ok := module.(NavigationContributor); ok {
			contributor.ContributeNavigation(nav)
		}
		if contributor, ok := module.(CommandContributor); ok {
			contributor.ContributeCommands(commands)
		}
	}
}
