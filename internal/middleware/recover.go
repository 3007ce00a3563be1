package middleware

import (
	"log"
	"net/http"
)

// Recover converts any panic below it into a structured 500 response so the
// API never returns an unformatted failure.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("PANIC: %s %s: %v", r.Method, r.URL.Path, rec)
				writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", r)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
