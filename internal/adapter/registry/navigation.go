package registry

// NavigationEntry is one contributed navigation destination.
type NavigationEntry struct {
	ID    string
	Title string
	Icon  string
}

// NavigationBuilder follows the same append contract as CommandBuilder:
// insertion order, full-value dedup, first occurrence wins.
type NavigationBuilder struct {
	seen    map[NavigationEntry]struct{}
	entries []NavigationEntry
}

func NewNavigationBuilder() *NavigationBuilder {
	return &NavigationBuilder{
		seen: make(map[NavigationEntry]struct{}),
	}
}

func (b *NavigationBuilder) Add(entries ...NavigationEntry) {
	for _, entry := range entries {
		if _, dup := b.seen[entry]; dup {
			continue
		}
		b.seen[entry] = struct{}{}
		b.entries = append(b.entries, entry)
	}
}

func (b *NavigationBuilder) Entries() []NavigationEntry {
	out := make([]NavigationEntry, len(b.entries))
	copy(out, b.entries)
	return out
}
