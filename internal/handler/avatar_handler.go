package handler

import (
	"net/http"
	"strings"

	"biblenow/internal/app/storage"
	"biblenow/internal/pkg/auth/jwt"
	"biblenow/internal/pkg/errs"
	"biblenow/internal/pkg/logx"
	"biblenow/internal/pkg/req"
	"biblenow/internal/pkg/resp"
)

// PresignAvatarInput defines the JSON input structure for generating an avatar upload URL.
type PresignAvatarInput struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	FileSize int64  `json:"fileSize"`
}

// HandlePresignAvatar creates an HTTP HandlerFunc that returns a time-limited, pre-signed URL
// for uploading the caller's avatar, and the public URL the avatar will be served from.
func HandlePresignAvatar(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := jwt.GetSessionFromContext(r)
		if session == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var input PresignAvatarInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := storage.ValidateAvatarSize(input.FileSize); err != nil {
			resp.RespondError(w, r, err)
			return
		}

		if err := storage.ValidateAvatarType(input.FileName, input.MimeType); err != nil {
			resp.RespondError(w, r, err)
			return
		}

		fileKey := storage.AvatarKey(session.Subject, input.FileName)

		url, err := deps.Storage.PresignUpload(
			r.Context(),
			fileKey,
			strings.ToLower(input.MimeType),
			input.FileSize,
			storage.PresignedURLDuration,
		)
		if err != nil {
			logx.FromRequest(r).Error().Err(err).Str("key", fileKey).Msg("Avatar presign failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrFileStorageFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"presignedUrl": url,
			"fileKey":      fileKey,
			"publicUrl":    deps.Storage.PublicURL(fileKey),
		})
	}
}
