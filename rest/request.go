package rest

import "strings"

// Request describes an outbound REST call. It is a value: interceptors
// return replacements instead of mutating it.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE, etc).
	Method string
	// URL is the absolute request URL.
	URL string
	// Headers are request headers.
	Headers map[string]string
	// Body is the raw request body.
	Body []byte
}

// WithHeaders returns a copy of the request with defaults merged beneath
// the request's own headers. Existing keys win.
func (r Request) WithHeaders(defaults map[string]string) Request {
	if len(defaults) == 0 {
		return r
	}
	merged := make(map[string]string, len(defaults)+len(r.Headers))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range r.Headers {
		merged[k] = v
	}
	r.Headers = merged
	return r
}

// Response is the result of a REST call. A zero StatusCode means no
// response was ever received from the transport.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, single-valued with canonical keys.
	Headers map[string]string
	// Raw is the undecoded body as received from the wire.
	Raw []byte
	// Body is the decoded body: a string for text payloads, a structured
	// value for JSON, or the raw bytes otherwise.
	Body any
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// Header returns the value for key, matching case-insensitively so
// interceptor-built responses with uncanonical keys still resolve.
func (r *Response) Header(key string) string {
	if v, ok := r.Headers[key]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
