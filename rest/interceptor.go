package rest

// Interceptor hooks into the lifecycle of a call. ModifyRequest runs once
// before the attempt loop; InterceptRequest runs once per attempt and may
// short-circuit the network send by returning a non-nil response;
// ModifyResponse runs once per attempt after a response is assembled.
//
// A per-call interceptor takes precedence over the client-wide one.
type Interceptor interface {
	ModifyRequest(c *Client, req Request) Request
	InterceptRequest(c *Client, req Request) *Response
	ModifyResponse(c *Client, req Request, resp *Response) *Response
}

// InterceptorFuncs adapts plain functions to an Interceptor. Nil fields
// are identity.
type InterceptorFuncs struct {
	ModifyRequestFunc    func(c *Client, req Request) Request
	InterceptRequestFunc func(c *Client, req Request) *Response
	ModifyResponseFunc   func(c *Client, req Request, resp *Response) *Response
}

// ModifyRequest implements Interceptor.
func (f InterceptorFuncs) ModifyRequest(c *Client, req Request) Request {
	if f.ModifyRequestFunc == nil {
		return req
	}
	return f.ModifyRequestFunc(c, req)
}

// InterceptRequest implements Interceptor.
func (f InterceptorFuncs) InterceptRequest(c *Client, req Request) *Response {
	if f.InterceptRequestFunc == nil {
		return nil
	}
	return f.InterceptRequestFunc(c, req)
}

// ModifyResponse implements Interceptor.
func (f InterceptorFuncs) ModifyResponse(c *Client, req Request, resp *Response) *Response {
	if f.ModifyResponseFunc == nil {
		return resp
	}
	return f.ModifyResponseFunc(c, req, resp)
}

// Absent interceptors and nil results are a no-op; these helpers keep the
// orchestrator free of nil checks.

func modifyRequest(i Interceptor, c *Client, req Request) Request {
	if i == nil {
		return req
	}
	return i.ModifyRequest(c, req)
}

func interceptRequest(i Interceptor, c *Client, req Request) *Response {
	if i == nil {
		return nil
	}
	return i.InterceptRequest(c, req)
}

func modifyResponse(i Interceptor, c *Client, req Request, resp *Response) *Response {
	if i == nil {
		return resp
	}
	if out := i.ModifyResponse(c, req, resp); out != nil {
		return out
	}
	return resp
}
