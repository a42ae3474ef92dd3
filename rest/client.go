package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/restverse/restcall/logger"
	"github.com/restverse/restcall/retry"
	"github.com/restverse/restcall/transport"
)

// Client executes REST calls against its configuration. It is safe for
// concurrent use; the configuration is read-only after New.
type Client struct {
	cfg Config
	log *logger.Logger
}

// New creates a client. The configuration is defaulted and validated
// once, up front.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg: cfg,
		log: cfg.Logger.WithComponent("rest"),
	}, nil
}

// Config returns the client's configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// attemptResult is the tagged outcome of one attempt. err == nil means
// the call is done and resp goes to the caller; otherwise fatal decides
// whether the retry loop may continue.
type attemptResult struct {
	resp  *Response
	err   error
	fatal bool
}

// Execute runs the call to completion: one or more attempts, separated by
// backoff waits, until a terminal success or failure.
//
// On failure the returned error is a *Error carrying the last response
// (synthetic when no response was ever obtained), wrapping any transport
// error underneath.
func (c *Client) Execute(ctx context.Context, req Request, opts ...CallOption) (*Response, error) {
	o := newCallOptions(c.cfg)
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	req = req.WithHeaders(c.cfg.Headers)
	req = modifyRequest(o.interceptor, c, req)

	sink := reporterSink{r: o.reporter, log: c.log}
	policy := retry.Policy{Count: o.retryCount, Delay: o.retryDelay, Strategy: o.strategy}

	// The call id is stable across every attempt of this call.
	callID := uuid.NewString()
	delay := o.retryDelay
	var lastErr error

	for attempt := 0; policy.ShouldContinue(attempt); attempt++ {
		res := c.attempt(ctx, callID, attempt, req, o, sink)
		if res.err == nil {
			return res.resp, nil
		}
		lastErr = res.err

		if res.fatal || attempt >= o.retryCount {
			return nil, lastErr
		}
		if retry.Cancelled(ctx, o.emitter) {
			return nil, lastErr
		}
		c.log.Debug("attempt failed, backing off", logger.Fields(
			logger.FieldCallID, callID,
			logger.FieldAttempt, attempt+1,
			logger.FieldError, lastErr.Error(),
			"delay", delay.String(),
		))
		if err := retry.Wait(ctx, o.emitter, delay); err != nil {
			return nil, lastErr
		}
		if retry.Cancelled(ctx, o.emitter) {
			return nil, lastErr
		}
		delay = policy.NextDelay(delay)
	}

	// Unreachable while the loop invariants hold: every attempt either
	// returns or keeps a non-nil lastErr with budget to continue.
	return nil, ErrUnknown
}

// attempt runs one send/decode/classify cycle. The transport handle is
// scoped to the attempt and closed on every exit path.
func (c *Client) attempt(ctx context.Context, callID string, attempt int, req Request, o *callOptions, sink reporterSink) attemptResult {
	start := time.Now()

	handle, err := c.cfg.Factory.Create(o.proxy, o.withCredentials)
	if err != nil {
		return attemptResult{
			err:   fmt.Errorf("%w: create transport: %v", ErrConfiguration, err),
			fatal: true,
		}
	}
	defer func() { _ = handle.Close() }()

	ev := Event{CallID: callID, Attempt: attempt + 1, Start: start, Request: req}
	sink.request(ctx, ev)

	var resp *Response
	var sendErr error
	if short := interceptRequest(o.interceptor, c, req); short != nil {
		// Short-circuited by the interceptor; the response flows through
		// decode and classification as if it came off the network.
		resp = short
		done := ev
		done.Response, done.Duration = resp, time.Since(start)
		sink.response(ctx, done)
	} else {
		var secure func(*http.Request) error
		if o.authorizer != nil {
			secure = o.authorizer.Secure
		}
		raw, err := handle.Send(ctx, transport.Request{
			Method:  req.Method,
			URL:     req.URL,
			Headers: req.Headers,
			Body:    req.Body,
			Timeout: o.timeout,
			Secure:  secure,
		})
		if err != nil {
			sendErr = err
			done := ev
			done.Err, done.Duration = err, time.Since(start)
			sink.failure(ctx, done)
		} else {
			resp = &Response{StatusCode: raw.StatusCode, Headers: raw.Headers, Raw: raw.Body}
			done := ev
			done.Response, done.Duration = resp, time.Since(start)
			sink.response(ctx, done)
		}
	}

	if sendErr != nil {
		restErr := NewError(sendErr.Error(), nil)
		restErr.Err = sendErr
		return attemptResult{err: restErr}
	}

	resp.Body = c.cfg.Decoder.Decode(ctx, resp.Raw, resp.Header("Content-Type"), o.json)
	resp = modifyResponse(o.interceptor, c, req, resp)

	fatal := IsFatalStatus(resp.StatusCode)
	if o.statusErrors && (resp.StatusCode < 200 || resp.StatusCode >= 400) {
		return attemptResult{
			resp:  resp,
			err:   NewError(fmt.Sprintf("request failed with status %d", resp.StatusCode), resp),
			fatal: fatal,
		}
	}

	done := ev
	done.Response, done.Duration = resp, time.Since(start)
	sink.success(ctx, done)
	return attemptResult{resp: resp}
}
