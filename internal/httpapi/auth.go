package httpapi

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader is the fixed request header carrying the shared secret.
const APIKeyHeader = "X-API-Key"

// apiKey is the configured shared secret. Empty disables authentication
// entirely.
var apiKey string

// SetAPIKey installs the shared secret checked on every API route.
func SetAPIKey(key string) { apiKey = key }

// requireAPIKey rejects requests whose shared secret is missing or wrong.
// When no secret is configured the middleware passes everything through.
func requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKey != "" {
			provided := r.Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				writeJSONError(w, http.StatusUnauthorized, "invalid or missing API key")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
