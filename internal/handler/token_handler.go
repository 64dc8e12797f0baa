/*
Package handler provides the HTTP handlers and routing setup for the BibleNOW Studio API.
*/
package handler

import (
	"errors"
	"net/http"
	"strings"

	"biblenow/internal/app/room"
	"biblenow/internal/pkg/auth/jwt"
	"biblenow/internal/pkg/errs"
	"biblenow/internal/pkg/logx"
	"biblenow/internal/pkg/req"
	"biblenow/internal/pkg/resp"
)

// IssueTokenInput defines the JSON body of a room token request.
type IssueTokenInput struct {
	RoomTitle   string     `json:"roomTitle"`
	IsModerator req.Truthy `json:"isModerator"`
	DisplayName string     `json:"displayName"`
	Email       string     `json:"email"`
	Avatar      string     `json:"avatar"`
}

// IssueTokenOutput is returned on success. Room is the slug the token was issued for,
// so callers can check it against the room they are about to join.
type IssueTokenOutput struct {
	Token string `json:"token"`
	Room  string `json:"room"`
}

// HandleIssueToken creates an HTTP HandlerFunc that mints a signed room token for the
// conference service. Only POST and OPTIONS are accepted.
func HandleIssueToken(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
		case http.MethodOptions:
			resp.RespondEmpty(w, r)
			return
		default:
			w.Header().Set("Allow", "POST, OPTIONS")
			resp.RespondError(w, r, errs.NewError(errs.ErrMethodNotAllowed))
			return
		}

		var input IssueTokenInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		// Input is validated before configuration so a bad request never reads as a server fault.
		if strings.TrimSpace(input.RoomTitle) == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrRoomTitleRequired))
			return
		}

		slug := room.Normalize(input.RoomTitle)
		if slug == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrRoomTitleInvalid))
			return
		}

		secret := deps.Config.JitsiAppSecret
		if secret == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrSigningSecretMissing))
			return
		}

		viewer := jwt.Viewer{
			DisplayName: strings.TrimSpace(input.DisplayName),
			Email:       strings.TrimSpace(input.Email),
			Avatar:      strings.TrimSpace(input.Avatar),
			Moderator:   input.IsModerator.Bool(),
		}
		claims := jwt.BuildRoomClaims(slug, viewer, deps.now(), deps.Config.TokenIssuer())

		token, err := jwt.SignRoomToken(claims, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrMissingSecret) {
				resp.RespondError(w, r, errs.NewError(errs.ErrSigningSecretMissing))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown, err))
			return
		}

		logx.FromRequest(r).Info().
			Str("room", slug).
			Bool("moderator", viewer.Moderator).
			Msg("Room token issued")

		resp.RespondSuccess(w, r, IssueTokenOutput{Token: token, Room: slug})
	}
}
