package storage

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"biblenow/internal/pkg/errs"
)

const (
	// MaxAvatarSizeMB is the maximum allowed avatar size in megabytes.
	MaxAvatarSizeMB = 5

	// MaxAvatarSize is the maximum allowed avatar size in bytes.
	MaxAvatarSize = MaxAvatarSizeMB * 1024 * 1024

	// PresignedURLDuration is the fixed duration for which the upload URL is valid (5 minutes).
	PresignedURLDuration = 5 * time.Minute
)

// ExtToMIME maps the permitted avatar file extensions to their MIME types.
var ExtToMIME = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// ValidateAvatarSize checks if the provided file size is within acceptable limits.
func ValidateAvatarSize(fileSize int64) *errs.CustomError {
	if fileSize <= 0 {
		return errs.NewError(errs.ErrInvalidParams)
	}

	if fileSize > MaxAvatarSize {
		return errs.NewError(errs.ErrFileSizeTooLarge)
	}

	return nil
}

// ValidateAvatarType checks that the file is an allowed image and that its extension matches the MIME type.
func ValidateAvatarType(fileName string, mimeType string) *errs.CustomError {
	ext := strings.ToLower(path.Ext(fileName))

	expectedMIME, ok := ExtToMIME[ext]
	if !ok || expectedMIME != strings.ToLower(mimeType) {
		return errs.NewError(errs.ErrFileTypeInvalid)
	}

	return nil
}

// AvatarKey returns a fresh object key for an avatar uploaded by userID.
func AvatarKey(userID string, fileName string) string {
	return "avatars/" + userID + "/" + uuid.NewString() + strings.ToLower(path.Ext(fileName))
}
