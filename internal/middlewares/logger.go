package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/topi314/event-graph/internal/xio"
)

func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := xio.NewStatusResponseWriter(w)

		next.ServeHTTP(sw, r)

		slog.InfoContext(r.Context(), "Handled request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", sw.Status),
			slog.Int("bytes", sw.Bytes),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", r.RemoteAddr),
		)
	})
}
