package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"
)

// ErrMissingSecret is returned when a token is signed or verified without a configured secret.
// It is a server configuration fault, never a client fault.
var ErrMissingSecret = errors.New("jwt: signing secret is not configured")

// SignRoomToken signs the claims with HMAC-SHA256 and returns the compact serialization.
func SignRoomToken(claims *RoomClaims, secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign room token: %w", err)
	}
	return signed, nil
}

// ParseRoomToken verifies the signature and validity window of a room token.
func ParseRoomToken(tokenString string, secret string) (*RoomClaims, error) {
	return parseRoomToken(&jwt.Parser{}, tokenString, secret)
}

// DecodeRoomToken verifies the signature of a room token but not its validity window.
// It is meant for inspecting tokens after the fact, e.g. in debugging tools.
func DecodeRoomToken(tokenString string, secret string) (*RoomClaims, error) {
	return parseRoomToken(&jwt.Parser{SkipClaimsValidation: true}, tokenString, secret)
}

func parseRoomToken(parser *jwt.Parser, tokenString string, secret string) (*RoomClaims, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	claims := &RoomClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, hmacKey(secret))
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	return claims, nil
}

func hmacKey(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}
}
