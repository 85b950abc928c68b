package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const maxRequestBodySize = 1 << 20

type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

func (s *Server) GraphQL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var rq graphQLRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&rq); err != nil {
		slog.DebugContext(ctx, "Failed to decode GraphQL request", slog.Any("err", err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if rq.Query == "" {
		http.Error(w, "Missing 'query' in request body", http.StatusBadRequest)
		return
	}

	rs := s.Schema.Exec(ctx, rq.Query, rq.OperationName, rq.Variables)
	for _, err := range rs.Errors {
		code, _ := err.Extensions["code"].(string)
		if code == "" {
			code = "GRAPHQL"
		}
		s.Metrics.GraphQLError(code)
		slog.DebugContext(ctx, "GraphQL error", slog.String("operation", rq.OperationName), slog.String("code", code), slog.String("message", err.Message))
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rs); err != nil {
		slog.ErrorContext(ctx, "Failed to encode GraphQL response", slog.Any("err", err))
		return
	}
}
