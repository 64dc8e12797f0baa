package jwt

import (
	"context"
	"net/http"
	"strings"

	"biblenow/internal/pkg/errs"
	"biblenow/internal/pkg/logx"
	"biblenow/internal/pkg/resp"
)

// Define Context Key for storing the session claims, preventing key collisions with other packages.
type contextKey string

const (
	// ContextSessionKey is the key used to store the verified *SessionClaims in the request Context.
	ContextSessionKey contextKey = "session_claims"
)

// RequireSession verifies the Supabase access token in the Authorization header and injects
// its claims into the Context. Requests without a valid token are answered with 401.
func RequireSession(secretKey string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r.Header.Get("Authorization"))
			if tokenString == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			claims, err := ParseSessionToken(tokenString, secretKey)
			if err != nil {
				logx.FromRequest(r).Warn().Err(err).Msg("Rejected session token")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			ctx := context.WithValue(r.Context(), ContextSessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext extracts the verified session claims from the request Context.
// It returns nil outside of RequireSession.
func GetSessionFromContext(r *http.Request) *SessionClaims {
	claims, ok := r.Context().Value(ContextSessionKey).(*SessionClaims)
	if !ok {
		return nil
	}
	return claims
}

// bearerToken returns the token of an "Authorization: Bearer <token>" header value,
// or "" when the value has another form.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
