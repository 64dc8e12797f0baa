package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"biblenow/internal/pkg/errs"
	"biblenow/internal/pkg/logx"
	"biblenow/internal/pkg/resp"
)

// HandleLiveStream creates an HTTP HandlerFunc that passes /live/{room} through to the streaming upstream.
func HandleLiveStream(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room, err := url.PathUnescape(chi.URLParam(r, "room"))
		if err != nil || room == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		deps.Live.ServeRoom(w, r, room)
	}
}

// LiveProxyErrorHandler renders upstream failures of the live proxy. The cause is logged only.
func LiveProxyErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	logx.FromRequest(r).Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg("Live stream upstream request failed")

	resp.RespondError(w, r, errs.NewError(errs.ErrUpstreamUnavailable))
}
