package middleware

import (
	"net/http"
)

// BodyLimit caps the request body at maxBytes. Reads past the limit fail, and
// the JSON decoder surfaces that as a bad request rather than letting an
// oversized payload exhaust memory.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
