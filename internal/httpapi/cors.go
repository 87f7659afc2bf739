package httpapi

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Headers added to every response so browser pages on any origin can fetch
// model files.
const (
	allowOrigin  = "*"
	allowMethods = "GET, OPTIONS"
	allowHeaders = "*"
)

// corsNegotiation handles origin-aware CORS (Vary, Max-Age, reflected
// preflight headers). OPTIONS requests pass through to the preflight route.
func corsNegotiation(maxAge int) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders:     []string{"*"},
		MaxAge:             maxAge,
		OptionsPassthrough: true,
	})
}

// PermissiveCORS sets the fixed allow-origin, allow-methods and allow-headers
// values on every response, with or without an Origin header.
func PermissiveCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Methods", allowMethods)
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		next.ServeHTTP(w, r)
	})
}

// preflight answers any OPTIONS request with an empty 204.
func preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
