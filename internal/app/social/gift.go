package social

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	performGiftProcedure = "perform_shekel_gift"

	// MaxGiftMessageLength is the maximum number of characters in a gift message.
	MaxGiftMessageLength = 280
)

// GiftRequest describes a shekel transfer from SenderID to RecipientID.
type GiftRequest struct {
	SenderID    string
	RecipientID string
	Amount      int64
	Message     string
	StreamID    string
}

// GiftResult is what perform_shekel_gift reports after a successful transfer.
type GiftResult struct {
	GiftID     string `json:"gift_id"`
	NewBalance int64  `json:"new_balance"`
}

// SendGift transfers shekels between two viewers. The balance check and the transfer happen
// atomically inside perform_shekel_gift; an insufficient balance comes back as a *db.ProcedureError.
func (s *Service) SendGift(ctx context.Context, req GiftRequest) (*GiftResult, error) {
	sender, err := parseUserID(req.SenderID)
	if err != nil {
		return nil, err
	}

	recipient, err := parseUserID(req.RecipientID)
	if err != nil {
		return nil, err
	}

	if sender == recipient {
		return nil, ErrCannotGiftSelf
	}

	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	message := strings.TrimSpace(req.Message)
	if utf8.RuneCountInString(message) > MaxGiftMessageLength {
		return nil, ErrMessageTooLong
	}

	raw, err := s.rpc.Call(ctx, performGiftProcedure, map[string]any{
		"p_sender_id":    sender,
		"p_recipient_id": recipient,
		"p_amount":       req.Amount,
		"p_message":      nullIfEmpty(message),
		"p_stream_id":    nullIfEmpty(strings.TrimSpace(req.StreamID)),
	})
	if err != nil {
		return nil, fmt.Errorf("shekel gift from %s to %s failed: %w", sender, recipient, err)
	}

	result := &GiftResult{}
	if err := decodeResult(performGiftProcedure, raw, result); err != nil {
		return nil, err
	}
	return result, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
