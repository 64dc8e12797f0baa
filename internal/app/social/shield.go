package social

import (
	"context"
	"fmt"
	"time"
)

const (
	shieldProcedure     = "shield_user"
	unshieldProcedure   = "unshield_user"
	listShieldProcedure = "list_shielded_users"
)

// Shield is one entry of a viewer's shield list.
type Shield struct {
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ShieldUser adds targetID to the shield list of userID. Shielding someone twice is not an error.
func (s *Service) ShieldUser(ctx context.Context, userID, targetID string) error {
	owner, target, err := shieldPair(userID, targetID)
	if err != nil {
		return err
	}

	if owner == target {
		return ErrCannotShieldSelf
	}

	raw, err := s.rpc.Call(ctx, shieldProcedure, shieldArgs(owner, target))
	if err != nil {
		return fmt.Errorf("shield %s for %s failed: %w", target, owner, err)
	}
	return decodeResult(shieldProcedure, raw, nil)
}

// UnshieldUser removes targetID from the shield list of userID and reports whether an entry existed.
func (s *Service) UnshieldUser(ctx context.Context, userID, targetID string) (bool, error) {
	owner, target, err := shieldPair(userID, targetID)
	if err != nil {
		return false, err
	}

	raw, err := s.rpc.Call(ctx, unshieldProcedure, shieldArgs(owner, target))
	if err != nil {
		return false, fmt.Errorf("unshield %s for %s failed: %w", target, owner, err)
	}

	var result struct {
		Removed bool `json:"removed"`
	}
	if err := decodeResult(unshieldProcedure, raw, &result); err != nil {
		return false, err
	}
	return result.Removed, nil
}

// ListShields returns the shield list of userID, most recent first.
func (s *Service) ListShields(ctx context.Context, userID string) ([]Shield, error) {
	owner, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.rpc.Call(ctx, listShieldProcedure, map[string]any{"p_user_id": owner})
	if err != nil {
		return nil, fmt.Errorf("list shields for %s failed: %w", owner, err)
	}

	shields := []Shield{}
	if err := decodeResult(listShieldProcedure, raw, &shields); err != nil {
		return nil, err
	}
	return shields, nil
}

func shieldPair(userID, targetID string) (string, string, error) {
	owner, err := parseUserID(userID)
	if err != nil {
		return "", "", err
	}

	target, err := parseUserID(targetID)
	if err != nil {
		return "", "", err
	}
	return owner, target, nil
}

func shieldArgs(owner, target string) map[string]any {
	return map[string]any{
		"p_user_id":          owner,
		"p_shielded_user_id": target,
	}
}
