// Package chat sends a single chat-completion request to a configured
// backend and hands back the raw success payload or a normalised failure.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tmellor/maestro/internal/adapter/provider"
	"github.com/tmellor/maestro/internal/core/domain"
	"github.com/tmellor/maestro/internal/logger"
)

const chatProvider = domain.Provider("chat")

// Proxy executes chat-completion requests. One attempt, one connection per
// call; no retries, no caching. The request body is forwarded verbatim and
// never interpreted here.
type Proxy struct {
	httpClient  *http.Client
	descriptors *Descriptors
	logger      *logger.StyledLogger
}

func NewProxy(descriptors *Descriptors, timeout time.Duration, log *logger.StyledLogger) *Proxy {
	return &Proxy{
		httpClient:  provider.NewHTTPClient(timeout),
		descriptors: descriptors,
		logger:      log,
	}
}

// Execute sends one POST to the named backend and returns the decoded success
// payload. Empty credentials fail fast with a precondition error, the same
// policy the account fetcher applies.
func (p *Proxy) Execute(ctx context.Context, backend, credential string, body map[string]any) (map[string]any, error) {
	desc, ok := p.descriptors.Get(backend)
	if !ok {
		return nil, domain.NewProviderError(chatProvider, domain.ErrKindPrecondition,
			fmt.Sprintf("unknown chat backend %q", backend), nil)
	}

	if strings.TrimSpace(credential) == "" {
		return nil, domain.NewProviderError(chatProvider, domain.ErrKindPrecondition,
			fmt.Sprintf("no credential configured for %s", desc.Name), nil)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, domain.NewProviderError(chatProvider, domain.ErrKindPrecondition,
			fmt.Sprintf("unencodable request body: %v", err), err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, desc.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewProviderError(chatProvider, domain.ErrKindPrecondition,
			fmt.Sprintf("invalid endpoint for %s: %v", desc.Name, err), err)
	}

	req.Header.Set("Content-Type", provider.DefaultContentType)
	req.Header.Set(desc.CredentialHeader, credentialValue(desc, credential))
	for name, value := range desc.ExtraHeaders {
		req.Header.Set(name, value)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, provider.TransportError(chatProvider, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Read the whole body before looking at the status; error envelopes
	// arrive on non-2xx responses too.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, provider.MaxResponseSize))
	if err != nil {
		return nil, provider.TransportError(chatProvider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := provider.FailureMessage(resp.StatusCode, raw)
		p.logger.WarnWithProvider("chat request rejected", desc.Name, "status", resp.StatusCode)
		return nil, domain.NewStatusError(chatProvider, resp.StatusCode, msg)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		// 2xx with an unparseable body is a different failure to an
		// HTTP-status error; keep them distinct.
		return nil, domain.NewProviderError(chatProvider, domain.ErrKindDecode,
			fmt.Sprintf("unexpected response from %s: %v", desc.Name, err), err)
	}

	return decoded, nil
}

func credentialValue(desc Descriptor, credential string) string {
	if desc.CredentialPrefix != "" {
		return desc.CredentialPrefix + " " + credential
	}
	return credential
}
