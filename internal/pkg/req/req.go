/*
Package req provides helper functions for HTTP request parsing and data binding.

It encapsulates JSON body decoding with size constraints and maps decoding failures
to client-input faults.
*/
package req

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"biblenow/internal/pkg/errs"
)

// MaxJSONBodySize is the maximum accepted size of a JSON request body (64 KB).
const MaxJSONBodySize int64 = 64 << 10

// BindJSON decodes the JSON request body into dst.
// A missing Content-Type is accepted; any other media type than application/json is rejected.
// An empty body leaves dst untouched so that required-field checks report the missing field.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	if contentType := r.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return errs.NewError(errs.ErrUnsupportedMediaType)
		}
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxJSONBodySize)
	decoder := json.NewDecoder(r.Body)

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errs.NewError(errs.ErrRequestEntityTooLarge)
		}
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
