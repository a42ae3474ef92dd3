// Package decode turns raw response bytes into a decoded body value based
// on the declared expectation (JSON or raw) and the response content type.
//
// Decoding is never fatal: a body that fails to parse as its declared
// content type degrades to its raw form with a logged warning.
package decode

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/restverse/restcall/logger"
)

// Decoder decodes response bodies, optionally offloading the work to a
// background Runner. Both paths produce identical values for identical
// inputs.
type Decoder struct {
	runner Runner
	log    *logger.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithRunner sets the execution strategy for decode work.
func WithRunner(r Runner) Option {
	return func(d *Decoder) { d.runner = r }
}

// WithLogger sets the logger used for decode warnings.
func WithLogger(l *logger.Logger) Option {
	return func(d *Decoder) { d.log = l }
}

// New creates a Decoder. Without options it decodes synchronously inline
// and logs warnings through the default logger.
func New(opts ...Option) *Decoder {
	d := &Decoder{runner: Sync{}}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = logger.NewDefault()
	}
	d.log = d.log.WithComponent("decode")
	return d
}

// Decode produces the decoded body for the given raw payload.
//
// With wantJSON false the raw bytes pass through unchanged. With wantJSON
// true a structured decode is attempted when the content type is absent or
// declares JSON and the body is non-empty. A content type under text/
// decodes to a UTF-8 string. Anything else passes through as raw bytes.
func (d *Decoder) Decode(ctx context.Context, raw []byte, contentType string, wantJSON bool) any {
	var body any
	err := d.runner.Submit(ctx, func() {
		body = d.decode(raw, contentType, wantJSON)
	})
	if err != nil {
		// Runner rejected the work (e.g. cancelled context); decode inline
		// so the caller still gets a body.
		return d.decode(raw, contentType, wantJSON)
	}
	return body
}

func (d *Decoder) decode(raw []byte, contentType string, wantJSON bool) any {
	if !wantJSON {
		return raw
	}
	ct := strings.ToLower(contentType)
	jsonLike := ct == "" || strings.Contains(ct, "application/json") || strings.Contains(ct, "text/json")
	if jsonLike && len(raw) > 0 {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			d.log.Warn("body failed to parse as JSON, falling back to raw",
				logger.Fields(logger.FieldError, err.Error(), "content_type", contentType))
			return fallback(raw)
		}
		return v
	}
	if strings.HasPrefix(ct, "text/") {
		return string(raw)
	}
	return raw
}

// fallback degrades an unparseable JSON body to text when it is valid
// UTF-8, otherwise to the raw bytes.
func fallback(raw []byte) any {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return raw
}
