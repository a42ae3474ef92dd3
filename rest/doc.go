// Package rest executes REST calls: it sends a request over a pluggable
// transport, retries transient failures with configurable backoff, refuses
// to retry fatal statuses, runs interceptors around the request/response,
// emits best-effort telemetry to reporters, and decodes the response body.
//
// # Basic Usage
//
//	client, err := rest.New(rest.Config{Timeout: 30 * time.Second})
//	if err != nil {
//	    return err
//	}
//
//	resp, err := client.Execute(ctx, rest.Request{
//	    Method: http.MethodGet,
//	    URL:    "https://api.example.com/users/123",
//	})
//
// # With Retries
//
//	resp, err := client.Execute(ctx, req,
//	    rest.WithRetry(3, time.Second),
//	    rest.WithDelayStrategy(retry.Exponential),
//	)
//
// Each call is a single sequential flow. Cancellation is cooperative:
// cancel the context, or close the channel passed via WithEmitter, and the
// engine abandons further retries, surfacing the most recent failure.
package rest
