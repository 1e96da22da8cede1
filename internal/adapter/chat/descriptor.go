package chat

import (
	"github.com/puzpuzpuz/xsync/v4"
)

// Descriptor is the configuration unit for one chat backend: where to POST,
// how to shape the credential header and which static headers ride along.
// Adding a backend means adding a descriptor, not new call sites.
type Descriptor struct {
	Name             string
	Endpoint         string
	CredentialHeader string
	// CredentialPrefix, when set, is prepended to the credential with a
	// single space ("Bearer <credential>"). Empty means the raw credential
	// is sent unmodified.
	CredentialPrefix string
	ExtraHeaders     map[string]string
}

const (
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"

	anthropicAPIVersion = "2023-06-01"
)

// Descriptors is a concurrency-safe descriptor set keyed by backend name.
type Descriptors struct {
	entries *xsync.Map[string, Descriptor]
}

func NewDescriptors() *Descriptors {
	return &Descriptors{entries: xsync.NewMap[string, Descriptor]()}
}

// DefaultDescriptors returns the built-in chat backends.
func DefaultDescriptors() *Descriptors {
	d := NewDescriptors()
	d.Register(Descriptor{
		Name:             BackendOpenAI,
		Endpoint:         "https://api.openai.com/v1/chat/completions",
		CredentialHeader: "Authorization",
		CredentialPrefix: "Bearer",
	})
	d.Register(Descriptor{
		Name:             BackendAnthropic,
		Endpoint:         "https://api.anthropic.com/v1/messages",
		CredentialHeader: "x-api-key",
		ExtraHeaders: map[string]string{
			"anthropic-version": anthropicAPIVersion,
		},
	})
	return d
}

func (d *Descriptors) Register(desc Descriptor) {
	d.entries.Store(desc.Name, desc)
}

func (d *Descriptors) Get(name string) (Descriptor, bool) {
	return d.entries.Load(name)
}

func (d *Descriptors) Names() []string {
	var names []string
	d.entries.Range(func(name string, _ Descriptor) bool {
		names = append(names, name)
		return true
	})
	return names
}
