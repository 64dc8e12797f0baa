/*
Package social implements viewer-to-viewer features: shielding (blocking) other viewers and
sending shekel gifts.

Every operation is a single stored-procedure call. The procedures own atomicity; this package
validates inputs, shapes the arguments, and interprets the jsonb result. There is no retry
and no idempotency key: a failed call is reported to the caller as-is.
*/
package social

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// Validation errors returned before any procedure is called.
var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrCannotShieldSelf = errors.New("cannot shield yourself")
	ErrInvalidAmount    = errors.New("gift amount must be positive")
	ErrCannotGiftSelf   = errors.New("cannot gift yourself")
	ErrMessageTooLong   = errors.New("gift message is too long")
)

// Caller invokes a named stored procedure with named arguments and returns its jsonb result.
type Caller interface {
	Call(ctx context.Context, name string, args map[string]any) (json.RawMessage, error)
}

// Service exposes shield and gift operations backed by stored procedures.
type Service struct {
	rpc Caller
}

// NewService returns a Service that calls procedures through rpc.
func NewService(rpc Caller) *Service {
	return &Service{rpc: rpc}
}

// parseUserID validates id as a UUID and returns its canonical lowercase form.
func parseUserID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidUserID
	}
	return parsed.String(), nil
}
