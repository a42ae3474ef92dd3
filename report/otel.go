package report

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/restverse/restcall/rest"
)

const tracerName = "github.com/restverse/restcall/report"

// Span attribute keys.
const (
	AttrCallID  = "rest.call_id"
	AttrAttempt = "rest.attempt"
	AttrMethod  = "http.request.method"
	AttrURL     = "url.full"
	AttrStatus  = "http.response.status_code"
)

// OTel reports each completed attempt as a span. The reporter is
// stateless: spans are created retroactively with the attempt's start and
// end timestamps, so there is nothing to leak when a call aborts between
// notifications.
type OTel struct {
	tracer trace.Tracer
}

// NewOTel creates an OpenTelemetry reporter. A nil provider falls back to
// the globally registered one.
func NewOTel(tp trace.TracerProvider) *OTel {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &OTel{tracer: tp.Tracer(tracerName)}
}

// Request implements rest.Reporter. The attempt is recorded when it
// completes; nothing to do yet.
func (r *OTel) Request(_ context.Context, _ rest.Event) {}

// Response implements rest.Reporter by recording a completed attempt span.
func (r *OTel) Response(ctx context.Context, ev rest.Event) {
	_, span := r.start(ctx, "rest.attempt", ev)
	if ev.Response != nil {
		span.SetAttributes(attribute.Int(AttrStatus, ev.Response.StatusCode))
	}
	r.end(span, ev)
}

// Success implements rest.Reporter by recording the terminal success.
func (r *OTel) Success(ctx context.Context, ev rest.Event) {
	_, span := r.start(ctx, "rest.call", ev)
	if ev.Response != nil {
		span.SetAttributes(attribute.Int(AttrStatus, ev.Response.StatusCode))
	}
	span.SetStatus(codes.Ok, "")
	r.end(span, ev)
}

// Failure implements rest.Reporter by recording a failed attempt span.
func (r *OTel) Failure(ctx context.Context, ev rest.Event) {
	_, span := r.start(ctx, "rest.attempt", ev)
	msg := "attempt failed"
	if ev.Err != nil {
		span.RecordError(ev.Err)
		msg = ev.Err.Error()
	}
	span.SetStatus(codes.Error, msg)
	r.end(span, ev)
}

func (r *OTel) start(ctx context.Context, name string, ev rest.Event) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, name,
		trace.WithTimestamp(ev.Start),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrCallID, ev.CallID),
			attribute.Int(AttrAttempt, ev.Attempt),
			attribute.String(AttrMethod, ev.Request.Method),
			attribute.String(AttrURL, ev.Request.URL),
		),
	)
}

func (r *OTel) end(span trace.Span, ev rest.Event) {
	span.End(trace.WithTimestamp(ev.Start.Add(ev.Duration)))
}
