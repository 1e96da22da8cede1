package ports

import "context"

// ChatCompleter executes exactly one chat-completion round-trip against a
// named backend. The body is forwarded verbatim and the success payload is
// returned undecoded beyond generic JSON; this core never types the
// provider's chat schema.
type ChatCompleter interface {
	Execute(ctx context.Context, backend, credential string, body map[string]any) (map[string]any, error)
}
