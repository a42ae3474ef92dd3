// Package auth provides authorizers: values that attach credentials to an
// outgoing transport-level request. The engine invokes the authorizer once
// per attempt, after interceptors have had their say.
package auth

import (
	"net/http"
)

// Authorizer adds credentials to an outgoing request. Secure may fail,
// in which case the attempt fails at the transport stage.
type Authorizer interface {
	Secure(req *http.Request) error
}

// Func adapts a plain function to an Authorizer.
type Func func(*http.Request) error

// Secure implements Authorizer.
func (f Func) Secure(req *http.Request) error {
	return f(req)
}

// Basic returns an authorizer that sets HTTP Basic credentials.
func Basic(username, password string) Authorizer {
	return Func(func(req *http.Request) error {
		req.SetBasicAuth(username, password)
		return nil
	})
}

// Bearer returns an authorizer that sets a static bearer token.
func Bearer(token string) Authorizer {
	return Func(func(req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	})
}

// APIKey returns an authorizer that sends an API key via the X-API-Key
// header.
func APIKey(key string) Authorizer {
	return APIKeyHeader(key, "X-API-Key")
}

// APIKeyHeader returns an authorizer that sends an API key via a custom
// header.
func APIKeyHeader(key, headerName string) Authorizer {
	return Func(func(req *http.Request) error {
		req.Header.Set(headerName, key)
		return nil
	})
}

// APIKeyQuery returns an authorizer that sends an API key via a query
// parameter.
func APIKeyQuery(key, paramName string) Authorizer {
	return Func(func(req *http.Request) error {
		q := req.URL.Query()
		q.Set(paramName, key)
		req.URL.RawQuery = q.Encode()
		return nil
	})
}
