package transport

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	xproxy "golang.org/x/net/proxy"
)

// HTTP is the net/http backed Factory. The zero value is ready to use.
type HTTP struct{}

// Create builds a handle with its own http.Client. A non-nil proxy is
// wired into the transport; withCredentials attaches a cookie jar so
// credentialed cookies survive across redirects within the attempt.
func (HTTP) Create(proxy *Proxy, withCredentials bool) (Handle, error) {
	t := http.DefaultTransport.(*http.Transport).Clone()
	if proxy != nil {
		if err := configureProxy(t, proxy); err != nil {
			return nil, err
		}
	}

	var jar http.CookieJar
	if withCredentials {
		var err error
		jar, err = cookiejar.New(nil)
		if err != nil {
			return nil, NewRequestError(err)
		}
	}

	return &httpHandle{client: &http.Client{Transport: t, Jar: jar}}, nil
}

func configureProxy(t *http.Transport, p *Proxy) error {
	u, err := url.Parse(p.URL)
	if err != nil {
		return NewRequestError(err)
	}

	if u.Scheme == "socks5" {
		var auth *xproxy.Auth
		if p.Username != "" {
			auth = &xproxy.Auth{User: p.Username, Password: p.Password}
		}
		dialer, err := xproxy.SOCKS5("tcp", u.Host, auth, xproxy.Direct)
		if err != nil {
			return NewRequestError(err)
		}
		t.Proxy = nil
		t.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(xproxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
		return nil
	}

	if p.Username != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	t.Proxy = http.ProxyURL(u)
	return nil
}

// httpHandle sends at most one attempt's worth of requests over a
// dedicated http.Client.
type httpHandle struct {
	client *http.Client
}

func (h *httpHandle) Send(ctx context.Context, req Request) (*Raw, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var rd io.Reader
	if len(req.Body) > 0 {
		rd = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, rd)
	if err != nil {
		return nil, NewRequestError(err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if req.Secure != nil {
		if err := req.Secure(httpReq); err != nil {
			return nil, NewRequestError(err)
		}
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &Raw{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

func (h *httpHandle) Close() error {
	h.client.CloseIdleConnections()
	return nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
