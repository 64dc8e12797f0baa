/*
Package live forwards stream requests to the streaming upstream.

The proxy is a transparent passthrough: one outbound request per inbound request, no caching,
no retries. Only a fixed set of response headers is copied back to the client.
*/
package live

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"
)

// ForwardedResponseHeaders are the only upstream response headers returned to clients.
var ForwardedResponseHeaders = []string{
	"Content-Type",
	"Content-Length",
	"Cache-Control",
	"Expires",
	"Last-Modified",
	"Etag",
}

// ErrorHandler is called when the upstream cannot be reached or returns an unreadable response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Proxy forwards /live/{room} requests to the same path on a fixed upstream.
type Proxy struct {
	upstream *url.URL
	proxy    *httputil.ReverseProxy
}

// NewProxy creates a Proxy for the given upstream base URL. onError renders transport failures.
func NewProxy(upstream *url.URL, onError ErrorHandler) *Proxy {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// Keeps the transport from adding its own gzip negotiation on top of the empty Accept-Encoding.
	transport.DisableCompression = true
	transport.ResponseHeaderTimeout = 15 * time.Second

	p := &Proxy{upstream: upstream}
	p.proxy = &httputil.ReverseProxy{
		Rewrite:        p.rewrite,
		Transport:      transport,
		ModifyResponse: filterResponseHeaders,
		ErrorHandler:   onError,
		FlushInterval:  -1,
	}
	return p
}

// ServeRoom forwards the request for room to the upstream and streams the response back.
func (p *Proxy) ServeRoom(w http.ResponseWriter, r *http.Request, room string) {
	r = r.WithContext(withRoom(r.Context(), room))
	p.proxy.ServeHTTP(w, r)
}

// UpstreamURL returns the upstream URL a request for room with the given raw query is sent to.
func (p *Proxy) UpstreamURL(room string, rawQuery string) *url.URL {
	target := *p.upstream
	target.Path = strings.TrimSuffix(p.upstream.Path, "/") + "/live/" + room
	target.RawPath = strings.TrimSuffix(p.upstream.EscapedPath(), "/") + "/live/" + url.PathEscape(room)
	target.RawQuery = rawQuery
	target.Fragment = ""
	return &target
}

func (p *Proxy) rewrite(pr *httputil.ProxyRequest) {
	room, _ := roomFromContext(pr.In.Context())

	pr.Out.URL = p.UpstreamURL(room, pr.In.URL.RawQuery)
	pr.Out.Host = p.upstream.Host

	// Ask the upstream for an identity-encoded body; the allowlist below drops Content-Encoding.
	pr.Out.Header.Set("Accept-Encoding", "")
	pr.Out.Header.Del("Cookie")
	pr.Out.Header.Del("Authorization")
}

func filterResponseHeaders(res *http.Response) error {
	filtered := make(http.Header, len(ForwardedResponseHeaders))
	for _, key := range ForwardedResponseHeaders {
		if values := res.Header.Values(key); len(values) > 0 {
			filtered[http.CanonicalHeaderKey(key)] = values
		}
	}
	res.Header = filtered
	return nil
}
