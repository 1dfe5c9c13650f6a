package controller

import (
	"net/http"
	"slices"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, " +
		"Cache-Control, Idempotency-Key, X-Request-Id"
	corsAllowMethods = "GET, POST, OPTIONS"
)

// CORSOptions lists the origins browsers may call the API from. A "*" entry allows
// any origin; credentials are only allowed for explicitly listed origins.
type CORSOptions struct {
	AllowedOrigins []string
}

// WithCORS returns a middleware that sets CORS headers for allowed origins and
// short-circuits OPTIONS preflight requests with 204 No Content.
func WithCORS(next http.Handler, opts CORSOptions) http.Handler {
	wildcard := slices.Contains(opts.AllowedOrigins, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		w.Header().Add("Vary", "Origin")

		switch {
		case origin != "" && slices.Contains(opts.AllowedOrigins, origin):
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		case wildcard:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
		w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")

		// handle preflight requests quickly
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
