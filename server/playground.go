package server

import (
	"log/slog"
	"net/http"
)

type PlaygroundVars struct {
	Endpoint string
}

func (s *Server) Playground(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	if err := s.Templates().ExecuteTemplate(w, "playground.gohtml", PlaygroundVars{
		Endpoint: graphQLPath,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render playground template", slog.Any("err", err))
		return
	}
}
