package jwt

import (
	"errors"

	"github.com/golang-jwt/jwt"
)

// SessionAudience is the audience Supabase puts on access tokens of signed-in users.
const SessionAudience = "authenticated"

// SessionClaims are the claims of a Supabase access token. Subject holds the user id.
type SessionClaims struct {
	jwt.StandardClaims

	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// ParseSessionToken verifies a Supabase access token issued for a signed-in user.
func ParseSessionToken(tokenString string, secret string) (*SessionClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, hmacKey(secret))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	if !claims.VerifyAudience(SessionAudience, true) {
		return nil, errors.New("token audience is not " + SessionAudience)
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
