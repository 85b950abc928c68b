package middlewares

import (
	"fmt"
	"net/http"
	"time"
)

// Cache marks responses as cacheable for maxAge, stale responses are revalidated in the background.
func Cache(maxAge time.Duration) func(http.Handler) http.Handler {
	value := fmt.Sprintf("stale-while-revalidate, max-age=%d", int(maxAge.Seconds()))
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", value)
			handler.ServeHTTP(w, r)
		})
	}
}
