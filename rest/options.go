package rest

import (
	"fmt"
	"time"

	"github.com/restverse/restcall/auth"
	"github.com/restverse/restcall/retry"
	"github.com/restverse/restcall/transport"
)

// CallOption overrides client defaults for a single call.
type CallOption func(*callOptions)

// callOptions is the fully resolved per-call configuration. Fields start
// at the client defaults; options overwrite them.
type callOptions struct {
	authorizer      auth.Authorizer
	emitter         <-chan struct{}
	json            bool
	reporter        Reporter
	interceptor     Interceptor
	retryCount      int
	retryDelay      time.Duration
	strategy        retry.DelayStrategy
	timeout         time.Duration
	statusErrors    bool
	withCredentials bool
	proxy           *transport.Proxy
}

func newCallOptions(cfg Config) *callOptions {
	return &callOptions{
		json:            true,
		reporter:        cfg.Reporter,
		interceptor:     cfg.Interceptor,
		retryDelay:      retry.MinDelay,
		timeout:         cfg.Timeout,
		statusErrors:    true,
		withCredentials: cfg.WithCredentials,
		proxy:           cfg.Proxy,
	}
}

func (o *callOptions) validate() error {
	if o.timeout != 0 && o.timeout < minTimeout {
		return fmt.Errorf("%w: timeout must be at least %s", ErrConfiguration, minTimeout)
	}
	if o.retryCount < 0 {
		return fmt.Errorf("%w: retry count must not be negative", ErrConfiguration)
	}
	if o.retryCount > 0 && o.retryDelay < retry.MinDelay {
		return fmt.Errorf("%w: retry delay must be at least %s", ErrConfiguration, retry.MinDelay)
	}
	return nil
}

// WithAuthorizer attaches credentials to each attempt's transport request.
func WithAuthorizer(a auth.Authorizer) CallOption {
	return func(o *callOptions) { o.authorizer = a }
}

// WithEmitter registers a cancellation channel: closing it makes the
// engine abandon retries and surface the most recent failure.
func WithEmitter(emitter <-chan struct{}) CallOption {
	return func(o *callOptions) { o.emitter = emitter }
}

// WithRawBody disables JSON decoding; the response body stays raw bytes.
func WithRawBody() CallOption {
	return func(o *callOptions) { o.json = false }
}

// WithReporter overrides the client's telemetry reporter for this call.
func WithReporter(r Reporter) CallOption {
	return func(o *callOptions) { o.reporter = r }
}

// WithInterceptor overrides the client's interceptor for this call.
func WithInterceptor(i Interceptor) CallOption {
	return func(o *callOptions) { o.interceptor = i }
}

// WithRetry enables count retries after the first attempt, waiting delay
// before the first retry. The delay must be at least one second.
func WithRetry(count int, delay time.Duration) CallOption {
	return func(o *callOptions) {
		o.retryCount = count
		o.retryDelay = delay
	}
}

// WithDelayStrategy sets the backoff growth strategy. The default is
// retry.Linear.
func WithDelayStrategy(s retry.DelayStrategy) CallOption {
	return func(o *callOptions) { o.strategy = s }
}

// WithTimeout overrides the per-attempt timeout for this call. It must be
// at least one second.
func WithTimeout(d time.Duration) CallOption {
	return func(o *callOptions) { o.timeout = d }
}

// WithStatusErrors controls whether non-success statuses surface as a
// *Error. When disabled the caller receives the Response regardless of
// status. Enabled by default.
func WithStatusErrors(on bool) CallOption {
	return func(o *callOptions) { o.statusErrors = on }
}

// WithCredentials overrides the client's credentialed-transport flag.
func WithCredentials(on bool) CallOption {
	return func(o *callOptions) { o.withCredentials = on }
}

// WithProxy overrides the client's proxy for this call.
func WithProxy(p *transport.Proxy) CallOption {
	return func(o *callOptions) { o.proxy = p }
}
