// internal/proxy/proxy.go

// Package proxy forwards /api/* to the bot backend so the browser can
// keep same-origin calls while the backend lives elsewhere. Pure
// passthrough: no retry, no caching, no body transformation.
package proxy

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/basketbot/admin-console/internal/backend"
)

// New builds the passthrough handler for the given backend origin.
// ReverseProxy already strips hop-by-hop headers both ways and streams
// the response body.
func New(origin string) (http.Handler, error) {
	target, err := url.Parse(origin)
	if err != nil {
		return nil, err
	}

	rp := httputil.NewSingleHostReverseProxy(target)
	rp.FlushInterval = 100 * time.Millisecond
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Ctx(r.Context()).Warn().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Proxy request failed")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"` + backend.MsgNoConnection + `"}`))
	}
	return rp, nil
}
