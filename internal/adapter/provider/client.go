package provider

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tmellor/maestro/internal/core/domain"
)

const (
	// MaxResponseSize caps how much of a backend response we read. 10MB is
	// generous for tag listings and chat payloads alike.
	MaxResponseSize = 10 * 1024 * 1024

	DefaultContentType = "application/json"

	DefaultMaxIdleConnections        = 10
	DefaultMaxIdleConnectionsPerHost = 5
	DefaultIdleConnTimeout           = 60 * time.Second
)

// NewHTTPClient builds a client with an explicit timeout. Every network
// operation in this core carries one; an unresponsive backend must surface as
// a deadline failure rather than hang the caller.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        DefaultMaxIdleConnections,
			MaxIdleConnsPerHost: DefaultMaxIdleConnectionsPerHost,
			IdleConnTimeout:     DefaultIdleConnTimeout,
		},
	}
}

// TransportError classifies a request failure that produced no response:
// deadline expiry maps to ErrKindDeadline, everything else to
// ErrKindTransport. The underlying error text is propagated directly,
// bypassing the message cascade.
func TransportError(p domain.Provider, err error) *domain.ProviderError {
	kind := domain.ErrKindTransport
	if isDeadline(err) {
		kind = domain.ErrKindDeadline
	}
	return domain.NewProviderError(p, kind, err.Error(), err)
}

func isDeadline(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var timeout interface{ Timeout() bool }
	return errors.As(err, &timeout) && timeout.Timeout()
}
