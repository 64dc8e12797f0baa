/*
Package errs provides custom error types and application-level error code constants.

This file defines the CustomError struct, which implements the standard Go error interface
and includes a business code, a user-facing message, an HTTP status code and a fault class.
*/
package errs

import (
	"fmt"
	"net/http"
	"strings"

	"biblenow/internal/pkg/logx"
)

// Class separates faults caused by the caller from faults caused by the server.
type Class int

const (
	// ClassClient marks client-input faults (4xx).
	ClassClient Class = iota

	// ClassConfiguration marks server-configuration faults (5xx), such as a missing signing secret.
	ClassConfiguration

	// ClassServer marks unexpected server faults (5xx). The cause is logged, never returned.
	ClassServer
)

func (c Class) String() string {
	switch c {
	case ClassClient:
		return "client"
	case ClassConfiguration:
		return "configuration"
	case ClassServer:
		return "server"
	}
	return "unknown"
}

// defaultStatus returns the HTTP status used when an error map entry leaves Status unset.
func (c Class) defaultStatus() int {
	if c == ClassClient {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CustomError is the custom error structure used throughout the application.
type CustomError struct {
	// Code is the application error code (see constants definition).
	Code int

	// Message is the human-readable description written to the response body.
	Message string

	// Status is the HTTP status code corresponding to this error.
	Status int

	// Class is the fault class of this error.
	Class Class
}

// Error implements the standard Go error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d, %s fault): %s", e.Code, e.Status, e.Class, e.Message)
}

// NewError constructs and returns a new *CustomError instance based on a predefined error code.
// The optional details parameter supplies printf-style arguments for messages containing
// formatting verbs. For ErrUnknown, an error passed as the first detail is logged instead.
// If an unknown code is provided, it defaults to returning ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		templateErr = errorMap[ErrUnknown]
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = customErr.Class.defaultStatus()
	}

	if code == ErrUnknown && len(details) > 0 {
		if originalErr, ok := details[0].(error); ok {
			logx.Error(
				originalErr,
				"Handling ErrUnknown with underlying error",
			)
		}
	} else if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn(
				"Details provided for error, but message template has no formatting placeholders. Details ignored.",
				"code", code,
			)
		}
	}

	return &customErr
}
