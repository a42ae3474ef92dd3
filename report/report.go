// Package report provides stock telemetry reporters for the rest engine:
// a structured-log reporter backed by zerolog and an OpenTelemetry span
// reporter.
package report

import (
	"context"

	"github.com/restverse/restcall/logger"
	"github.com/restverse/restcall/rest"
)

// Log reports call telemetry as structured log lines.
type Log struct {
	log *logger.Logger
}

// NewLog creates a logging reporter.
func NewLog(l *logger.Logger) *Log {
	if l == nil {
		l = logger.NewDefault()
	}
	return &Log{log: l.WithComponent("report")}
}

// Request implements rest.Reporter.
func (r *Log) Request(_ context.Context, ev rest.Event) {
	r.log.Debug("request", fields(ev))
}

// Response implements rest.Reporter.
func (r *Log) Response(_ context.Context, ev rest.Event) {
	r.log.Debug("response", fields(ev))
}

// Success implements rest.Reporter.
func (r *Log) Success(_ context.Context, ev rest.Event) {
	r.log.Info("call succeeded", fields(ev))
}

// Failure implements rest.Reporter.
func (r *Log) Failure(_ context.Context, ev rest.Event) {
	r.log.Warn("attempt failed", fields(ev))
}

func fields(ev rest.Event) map[string]interface{} {
	m := logger.Fields(
		logger.FieldCallID, ev.CallID,
		logger.FieldAttempt, ev.Attempt,
		logger.FieldMethod, ev.Request.Method,
		logger.FieldURL, ev.Request.URL,
	)
	if ev.Response != nil {
		m[logger.FieldStatus] = ev.Response.StatusCode
	}
	if ev.Err != nil {
		m[logger.FieldError] = ev.Err.Error()
	}
	if ev.Duration > 0 {
		m[logger.FieldDuration] = ev.Duration.Milliseconds()
	}
	return m
}
