package server

import (
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/topi314/event-graph/internal/middlewares"
)

const graphQLPath = "/graphql"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST "+graphQLPath, s.GraphQL)
	if s.Cfg.GraphQL.Playground {
		var playground http.Handler = http.HandlerFunc(s.Playground)
		if !s.Cfg.Dev {
			playground = middlewares.Cache(time.Hour)(playground)
		}
		mux.Handle("GET "+graphQLPath, playground)
		mux.Handle("GET /{$}", playground)
	}

	if s.Cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", s.Metrics.Handler())
	}
	mux.HandleFunc("GET /healthz", s.Health)

	mux.HandleFunc("/", s.NotFound)

	var handler http.Handler = mux
	if s.Cfg.RateLimit.Enabled {
		limiter := rate.NewLimiter(rate.Every(s.Cfg.RateLimit.Every.Std()), s.Cfg.RateLimit.Burst)
		handler = middlewares.RateLimit(limiter)(handler)
	}
	handler = cors.New(cors.Options{
		AllowedOrigins: s.Cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(handler)
	handler = s.Metrics.Middleware(handler)

	return middlewares.Logger(handler)
}

func (s *Server) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) NotFound(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
