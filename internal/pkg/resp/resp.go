/*
Package resp provides helper functions for constructing and sending HTTP JSON responses.

Successful responses carry their payload as the top-level JSON value. Failed responses
carry a single human-readable "error" string; codes and fault classes stay on the server.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"biblenow/internal/pkg/errs"
	"biblenow/internal/pkg/logx"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON is a generic response function used to set the Content-Type and send the JSON payload.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.FromRequest(r).Error().
			Err(err).
			Int("http_status", httpStatus).
			Msg("Error encoding JSON response")

		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondSuccess sends a successful HTTP response (HTTP 200 OK) with data as the body.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, data)
}

// RespondEmpty sends a successful response with no body, as used for CORS preflight requests.
func RespondEmpty(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// RespondError sends an HTTP response containing the error message of customErr.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	if customErr.Class != errs.ClassClient {
		logx.FromRequest(r).Warn().
			Int("error_code", customErr.Code).
			Str("fault_class", customErr.Class.String()).
			Msg(customErr.Message)
	}

	RespondJSON(w, r, customErr.Status, ErrorResponse{Error: customErr.Message})
}
