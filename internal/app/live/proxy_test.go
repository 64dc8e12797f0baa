package live

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreamRequest struct {
	path           string
	rawQuery       string
	host           string
	acceptEncoding []string
	cookie         string
}

func newUpstream(t *testing.T, got *upstreamRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = upstreamRequest{
			path:           r.URL.Path,
			rawQuery:       r.URL.RawQuery,
			host:           r.Host,
			acceptEncoding: r.Header.Values("Accept-Encoding"),
			cookie:         r.Header.Get("Cookie"),
		}
		w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
		w.Header().Set("Cache-Control", "max-age=2")
		w.Header().Set("Expires", "Thu, 01 Jan 2026 00:00:00 GMT")
		w.Header().Set("Last-Modified", "Wed, 31 Dec 2025 23:59:58 GMT")
		w.Header().Set("ETag", `"abc123"`)
		w.Header().Set("Set-Cookie", "upstream_session=1")
		w.Header().Set("X-Powered-By", "stream-origin")
		w.Header().Set("Access-Control-Allow-Origin", "https://upstream.example")
		io.WriteString(w, "#EXTM3U\n")
	}))
	t.Cleanup(srv.Close)
	return srv
}

func Test_Proxy_ServeRoom(t *testing.T) {
	var got upstreamRequest
	upstream := newUpstream(t, &got)
	target, err := url.Parse(upstream.URL)
	require.NoError(t, err)

	p := NewProxy(target, func(w http.ResponseWriter, r *http.Request, err error) {
		t.Fatalf("unexpected proxy error: %v", err)
	})

	req := httptest.NewRequest(http.MethodGet, "/live/sunday-service?segment=3", nil)
	req.Header.Set("Accept-Encoding", "gzip, br")
	req.Header.Set("Cookie", "sb-access-token=secret")
	res := httptest.NewRecorder()
	p.ServeRoom(res, req, "sunday-service")

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "#EXTM3U\n", res.Body.String())

	assert.Equal(t, "/live/sunday-service", got.path)
	assert.Equal(t, "segment=3", got.rawQuery)
	assert.Equal(t, target.Host, got.host)
	assert.Equal(t, []string{""}, got.acceptEncoding)
	assert.Empty(t, got.cookie)

	h := res.Header()
	assert.Equal(t, "application/vnd.apple.mpegurl", h.Get("Content-Type"))
	assert.Equal(t, "8", h.Get("Content-Length"))
	assert.Equal(t, "max-age=2", h.Get("Cache-Control"))
	assert.Equal(t, "Thu, 01 Jan 2026 00:00:00 GMT", h.Get("Expires"))
	assert.Equal(t, "Wed, 31 Dec 2025 23:59:58 GMT", h.Get("Last-Modified"))
	assert.Equal(t, `"abc123"`, h.Get("ETag"))
	assert.Empty(t, h.Get("Set-Cookie"))
	assert.Empty(t, h.Get("X-Powered-By"))
	assert.Empty(t, h.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, h.Get("Date"))
}

func Test_Proxy_upstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	target, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	upstream.Close()

	var proxyErr error
	p := NewProxy(target, func(w http.ResponseWriter, r *http.Request, err error) {
		proxyErr = err
		w.WriteHeader(http.StatusBadGateway)
	})

	req := httptest.NewRequest(http.MethodGet, "/live/vespers", nil)
	res := httptest.NewRecorder()
	p.ServeRoom(res, req, "vespers")

	assert.Equal(t, http.StatusBadGateway, res.Code)
	assert.Error(t, proxyErr)
}

func Test_Proxy_UpstreamURL(t *testing.T) {
	tests := []struct {
		base     string
		room     string
		rawQuery string
		want     string
	}{
		{"https://live.biblenow.io", "sunday-service", "", "https://live.biblenow.io/live/sunday-service"},
		{"https://live.biblenow.io/", "sunday-service", "t=1", "https://live.biblenow.io/live/sunday-service?t=1"},
		{"https://cdn.example.org/origin/", "choir", "", "https://cdn.example.org/origin/live/choir"},
		{"https://live.biblenow.io", "room with space", "", "https://live.biblenow.io/live/room%20with%20space"},
		{"https://live.biblenow.io", "a/b", "", "https://live.biblenow.io/live/a%2Fb"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			base, err := url.Parse(tt.base)
			require.NoError(t, err)
			p := NewProxy(base, nil)
			assert.Equal(t, tt.want, p.UpstreamURL(tt.room, tt.rawQuery).String())
		})
	}
}
