package rest

import (
	"context"
	"time"

	"github.com/restverse/restcall/logger"
)

// Event carries telemetry for one attempt of a call. The call id is
// stable across attempts; the start timestamp is fresh per attempt.
type Event struct {
	CallID  string
	Attempt int
	Start   time.Time
	Request Request
	// Response is set on response and success notifications.
	Response *Response
	// Err is set on failure notifications.
	Err error
	// Duration is the elapsed time of the attempt so far.
	Duration time.Duration
}

// Reporter receives best-effort telemetry. Every notification is
// fire-and-forget: panics are recovered and never affect the call.
//
// Per attempt the engine emits Request before the send, then Response
// (raw response received) or Failure (transport error), and exactly one
// Success when the call completes successfully.
type Reporter interface {
	Request(ctx context.Context, ev Event)
	Response(ctx context.Context, ev Event)
	Success(ctx context.Context, ev Event)
	Failure(ctx context.Context, ev Event)
}

// reporterSink shields the engine from reporter misbehavior. A nil
// reporter is a no-op.
type reporterSink struct {
	r   Reporter
	log *logger.Logger
}

func (s reporterSink) request(ctx context.Context, ev Event) {
	if s.r != nil {
		s.emit("request", func() { s.r.Request(ctx, ev) })
	}
}

func (s reporterSink) response(ctx context.Context, ev Event) {
	if s.r != nil {
		s.emit("response", func() { s.r.Response(ctx, ev) })
	}
}

func (s reporterSink) success(ctx context.Context, ev Event) {
	if s.r != nil {
		s.emit("success", func() { s.r.Success(ctx, ev) })
	}
}

func (s reporterSink) failure(ctx context.Context, ev Event) {
	if s.r != nil {
		s.emit("failure", func() { s.r.Failure(ctx, ev) })
	}
}

func (s reporterSink) emit(op string, fn func()) {
	defer func() {
		if p := recover(); p != nil {
			s.log.Warn("reporter panicked", logger.Fields("op", op, "panic", p))
		}
	}()
	fn()
}
