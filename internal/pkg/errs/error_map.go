/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// Entries without a Class are client-input faults; entries without a Status fall back to the
// default status of their class.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Request body is not valid JSON."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},
	ErrMethodNotAllowed:      {Code: ErrMethodNotAllowed, Message: "Method not allowed", Status: http.StatusMethodNotAllowed},
	ErrRouteNotFound:         {Code: ErrRouteNotFound, Message: "Not found", Status: http.StatusNotFound},

	// 2xxx: Room Token and Streaming Errors
	ErrRoomTitleRequired:   {Code: ErrRoomTitleRequired, Message: "roomTitle is required"},
	ErrRoomTitleInvalid:    {Code: ErrRoomTitleInvalid, Message: "roomTitle must contain letters or digits"},
	ErrUpstreamUnavailable: {Code: ErrUpstreamUnavailable, Message: "Live stream is unavailable.", Status: http.StatusBadGateway, Class: ClassServer},

	// 3xxx: Viewer, Social, and Security Errors
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrInvalidUserID:      {Code: ErrInvalidUserID, Message: "Invalid user id."},
	ErrCannotShieldSelf:   {Code: ErrCannotShieldSelf, Message: "You cannot shield yourself."},
	ErrInvalidGiftAmount:  {Code: ErrInvalidGiftAmount, Message: "Gift amount must be a positive whole number."},
	ErrCannotGiftSelf:     {Code: ErrCannotGiftSelf, Message: "You cannot send a gift to yourself."},
	ErrGiftMessageTooLong: {Code: ErrGiftMessageTooLong, Message: "Gift message is too long."},
	ErrProcedureRejected:  {Code: ErrProcedureRejected, Message: "%s"},
	ErrFileSizeTooLarge:   {Code: ErrFileSizeTooLarge, Message: "File is too large."},
	ErrFileTypeInvalid:    {Code: ErrFileTypeInvalid, Message: "Only JPEG, PNG, WebP and GIF images are allowed."},

	// 4xxx: Server Configuration Errors
	ErrSigningSecretMissing: {Code: ErrSigningSecretMissing, Message: "Server is not configured to issue room tokens", Class: ClassConfiguration},
	ErrFeatureNotConfigured: {Code: ErrFeatureNotConfigured, Message: "This feature is not available on this server.", Status: http.StatusServiceUnavailable, Class: ClassConfiguration},

	// 5xxx: Internal System Errors
	ErrUnknown:           {Code: ErrUnknown, Message: "Internal server error", Class: ClassServer},
	ErrFileStorageFailed: {Code: ErrFileStorageFailed, Message: "File upload failed. Please try again.", Status: http.StatusBadGateway, Class: ClassServer},
}
