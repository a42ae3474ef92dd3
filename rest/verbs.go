package rest

import (
	"context"
	"net/http"
)

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, url string, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, Request{Method: http.MethodGet, URL: url}, opts...)
}

// Post executes a POST request with the given body.
func (c *Client) Post(ctx context.Context, url string, body []byte, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, Request{Method: http.MethodPost, URL: url, Body: body}, opts...)
}

// Put executes a PUT request with the given body.
func (c *Client) Put(ctx context.Context, url string, body []byte, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, Request{Method: http.MethodPut, URL: url, Body: body}, opts...)
}

// Patch executes a PATCH request with the given body.
func (c *Client) Patch(ctx context.Context, url string, body []byte, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, Request{Method: http.MethodPatch, URL: url, Body: body}, opts...)
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, url string, opts ...CallOption) (*Response, error) {
	return c.Execute(ctx, Request{Method: http.MethodDelete, URL: url}, opts...)
}
