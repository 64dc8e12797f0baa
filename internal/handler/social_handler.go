package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"biblenow/internal/app/db"
	"biblenow/internal/app/social"
	"biblenow/internal/pkg/auth/jwt"
	"biblenow/internal/pkg/errs"
	"biblenow/internal/pkg/req"
	"biblenow/internal/pkg/resp"
)

type ShieldInput struct {
	UserID string `json:"userId"`
}

type SendGiftInput struct {
	RecipientID string `json:"recipientId"`
	Amount      int64  `json:"amount"`
	Message     string `json:"message,omitempty"`
	StreamID    string `json:"streamId,omitempty"`
}

// HandleShieldUser adds the given user to the caller's shield list.
func HandleShieldUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := jwt.GetSessionFromContext(r)
		if session == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var input ShieldInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Social.ShieldUser(r.Context(), session.Subject, input.UserID); err != nil {
			resp.RespondError(w, r, socialError(err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"success": true,
		})
	}
}

// HandleUnshieldUser removes the user in the URL from the caller's shield list.
func HandleUnshieldUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := jwt.GetSessionFromContext(r)
		if session == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		removed, err := deps.Social.UnshieldUser(r.Context(), session.Subject, chi.URLParam(r, "userId"))
		if err != nil {
			resp.RespondError(w, r, socialError(err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"success": true,
			"removed": removed,
		})
	}
}

// HandleListShields returns the caller's shield list.
func HandleListShields(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := jwt.GetSessionFromContext(r)
		if session == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		shields, err := deps.Social.ListShields(r.Context(), session.Subject)
		if err != nil {
			resp.RespondError(w, r, socialError(err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"shields": shields,
		})
	}
}

// HandleSendGift transfers shekels from the caller to another viewer.
func HandleSendGift(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := jwt.GetSessionFromContext(r)
		if session == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var input SendGiftInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		result, err := deps.Social.SendGift(r.Context(), social.GiftRequest{
			SenderID:    session.Subject,
			RecipientID: input.RecipientID,
			Amount:      input.Amount,
			Message:     input.Message,
			StreamID:    input.StreamID,
		})
		if err != nil {
			resp.RespondError(w, r, socialError(err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"success":    true,
			"giftId":     result.GiftID,
			"newBalance": result.NewBalance,
		})
	}
}

// socialError maps errors of the social service to response errors.
func socialError(err error) *errs.CustomError {
	var procErr *db.ProcedureError

	switch {
	case errors.Is(err, social.ErrInvalidUserID):
		return errs.NewError(errs.ErrInvalidUserID)
	case errors.Is(err, social.ErrCannotShieldSelf):
		return errs.NewError(errs.ErrCannotShieldSelf)
	case errors.Is(err, social.ErrInvalidAmount):
		return errs.NewError(errs.ErrInvalidGiftAmount)
	case errors.Is(err, social.ErrCannotGiftSelf):
		return errs.NewError(errs.ErrCannotGiftSelf)
	case errors.Is(err, social.ErrMessageTooLong):
		return errs.NewError(errs.ErrGiftMessageTooLong)
	case errors.As(err, &procErr):
		return errs.NewError(errs.ErrProcedureRejected, procErr.Message)
	default:
		return errs.NewError(errs.ErrUnknown, err)
	}
}
