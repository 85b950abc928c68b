package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/graph-gophers/graphql-go"

	"github.com/topi314/event-graph/server/database"
	"github.com/topi314/event-graph/server/graph"
	"github.com/topi314/event-graph/server/store"
)

//go:embed templates/*.gohtml
var templates embed.FS

// New loads the snapshot from the configured source and builds the server around it.
func New(ctx context.Context, cfg Config) (*Server, error) {
	snapshot, err := LoadSnapshot(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s, err := store.New(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	slog.InfoContext(ctx, "Loaded snapshot",
		slog.String("source", string(cfg.Store.Source)),
		slog.Int("events", s.Events.Len()),
		slog.Int("users", s.Users.Len()),
		slog.Int("locations", s.Locations.Len()),
		slog.Int("participants", s.Participants.Len()),
	)

	return NewWithStore(cfg, s)
}

func LoadSnapshot(ctx context.Context, cfg Config) (store.Snapshot, error) {
	switch cfg.Store.Source {
	case store.SourceFile, "":
		return store.LoadFile(cfg.Store.Path)
	case store.SourceDatabase:
		return database.LoadSnapshot(ctx, cfg.Database)
	default:
		return store.Snapshot{}, fmt.Errorf("unknown store source: %q", cfg.Store.Source)
	}
}

func NewWithStore(cfg Config, s *store.Store) (*Server, error) {
	var t func() *template.Template
	if cfg.Dev {
		root, err := os.OpenRoot("server/")
		if err != nil {
			return nil, fmt.Errorf("failed to open templates directory: %w", err)
		}
		t = func() *template.Template {
			return template.Must(template.New("templates").ParseFS(root.FS(), "templates/*.gohtml"))
		}
	} else {
		st := template.Must(template.New("templates").ParseFS(templates, "templates/*.gohtml"))
		t = func() *template.Template {
			return st
		}
	}

	schema, err := graph.NewSchema(s, cfg.GraphQL)
	if err != nil {
		return nil, err
	}

	srv := &Server{
		Cfg:       cfg,
		Store:     s,
		Schema:    schema,
		Metrics:   newMetrics(s),
		Templates: t,
	}
	srv.server = &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout.Std(),
	}

	return srv, nil
}

type Server struct {
	Cfg       Config
	Store     *store.Store
	Schema    *graphql.Schema
	Metrics   *Metrics
	Templates func() *template.Template
	server    *http.Server
}

func (s *Server) Start() {
	slog.Info("GraphQL server is up", slog.String("url", fmt.Sprintf("http://%s%s", displayAddr(s.server.Addr), graphQLPath)))
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", slog.Any("err", err))
	}
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
