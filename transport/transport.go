// Package transport defines the engine's transport collaborator: a
// factory that produces per-attempt send handles, and a net/http
// implementation with proxy and credential support.
package transport

import (
	"context"
	"net/http"
	"time"
)

// Proxy describes an outbound proxy. The URL scheme selects the
// mechanism: http, https, or socks5.
type Proxy struct {
	URL      string
	Username string
	Password string
}

// Request is the transport-level description of a single send.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
	// Timeout bounds the whole send. Zero means no per-attempt timeout.
	Timeout time.Duration
	// Secure, when non-nil, mutates the assembled request just before it
	// is sent, typically to attach credentials. An error aborts the send.
	Secure func(*http.Request) error
}

// Raw is the undecoded result of a single send. Header keys are
// canonicalized and multi-valued headers are flattened to their first
// value.
type Raw struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Handle performs sends for exactly one attempt. It must be closed on
// every exit path of that attempt.
type Handle interface {
	Send(ctx context.Context, req Request) (*Raw, error)
	Close() error
}

// Factory creates transport handles. Implementations resolve proxy and
// credential settings at creation time.
type Factory interface {
	Create(proxy *Proxy, withCredentials bool) (Handle, error)
}
