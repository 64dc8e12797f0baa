package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"

	"biblenow/internal/app/live"
	"biblenow/internal/configs"
	"biblenow/internal/pkg/auth/jwt"
)

const (
	testRoomSecret    = "jitsi-test-secret"
	testSessionSecret = "supabase-test-secret"
	viewerID          = "6f1c2b9e-5f55-4a1d-9c61-0d3b3e7c9a10"
	friendID          = "0b6f3c2e-8d1a-4c3b-9e7f-5a2d1c0b9e8f"
)

var fixedNow = time.Unix(1_760_000_000, 0)

func testConfig() *configs.AppConfig {
	upstream, _ := url.Parse("http://127.0.0.1:1")
	return &configs.AppConfig{
		Environment:       "development",
		Port:              8080,
		JitsiAppSecret:    testRoomSecret,
		JitsiAppID:        jwt.DefaultAppID,
		JitsiSubject:      jwt.DefaultSubject,
		TokenRate:         100,
		TokenBurst:        100,
		LiveUpstreamURL:   upstream,
		SupabaseJWTSecret: testSessionSecret,
	}
}

func newTestRouter(t *testing.T, deps *AppDeps) http.Handler {
	t.Helper()
	if deps.Now == nil {
		deps.Now = func() time.Time { return fixedNow }
	}
	if deps.Live == nil {
		deps.Live = live.NewProxy(deps.Config.LiveUpstreamURL, LiveProxyErrorHandler)
	}
	router, stop := Router(deps)
	t.Cleanup(stop)
	return router
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	r := httptest.NewRequest(method, target, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		r.Header[k] = v
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func sessionHeader(t *testing.T, subject string) http.Header {
	t.Helper()
	claims := jwt.SessionClaims{
		Role: "authenticated",
	}
	claims.Subject = subject
	claims.Audience = jwt.SessionAudience
	claims.ExpiresAt = time.Now().Add(time.Hour).Unix()

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSessionSecret))
	require.NoError(t, err)
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

type mockRPC struct {
	result json.RawMessage
	err    error
	name   string
	args   map[string]any
}

func (m *mockRPC) Call(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	m.name = name
	m.args = args
	return m.result, m.err
}
