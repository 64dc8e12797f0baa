package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionSecret = "supabase-jwt-secret"

func signSession(t *testing.T, claims SessionClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validSession() SessionClaims {
	return SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Audience:  SessionAudience,
			Subject:   "6f1c2b9e-5f55-4a1d-9c61-0d3b3e7c9a10",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		Email: "ruth@example.org",
		Role:  "authenticated",
	}
}

func Test_RequireSession(t *testing.T) {
	expired := validSession()
	expired.ExpiresAt = time.Now().Add(-time.Minute).Unix()

	anon := validSession()
	anon.Audience = "anon"

	noSubject := validSession()
	noSubject.Subject = ""

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantSubject string
	}{
		{"valid token", "Bearer " + signSession(t, validSession(), sessionSecret), http.StatusOK, "6f1c2b9e-5f55-4a1d-9c61-0d3b3e7c9a10"},
		{"scheme is case-insensitive", "bearer " + signSession(t, validSession(), sessionSecret), http.StatusOK, "6f1c2b9e-5f55-4a1d-9c61-0d3b3e7c9a10"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, ""},
		{"wrong secret", "Bearer " + signSession(t, validSession(), "other"), http.StatusUnauthorized, ""},
		{"expired", "Bearer " + signSession(t, expired, sessionSecret), http.StatusUnauthorized, ""},
		{"anonymous audience", "Bearer " + signSession(t, anon, sessionSecret), http.StatusUnauthorized, ""},
		{"no subject", "Bearer " + signSession(t, noSubject, sessionSecret), http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSubject string
			handler := RequireSession(sessionSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSubject = GetSessionFromContext(r).Subject
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/shields", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			assert.Equal(t, tt.wantStatus, res.Code)
			assert.Equal(t, tt.wantSubject, gotSubject)
		})
	}
}

func Test_GetSessionFromContext_outsideMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetSessionFromContext(req))
}

func Test_bearerToken(t *testing.T) {
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("foobar"))
	assert.Equal(t, "foobar", bearerToken("Bearer foobar"))
	assert.Equal(t, "", bearerToken("Entirely-Different-Prefix foobar"))
}
