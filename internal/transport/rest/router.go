// Package rest exposes the campaign services over HTTP.
package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fundrik/backend/internal/config"
	"github.com/fundrik/backend/internal/service/campaign"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Logger   *slog.Logger
	Commands *campaign.CommandService
	Queries  *campaign.QueryService
	CORS     config.CORSConfig
	Version  string
}

// NewRouter builds the HTTP routing tree.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitList(deps.CORS.AllowedOrigins),
		AllowedMethods:   splitList(deps.CORS.AllowedMethods),
		AllowedHeaders:   splitList(deps.CORS.AllowedHeaders),
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           deps.CORS.MaxAge,
	}))

	h := &campaignHandler{
		commands: deps.Commands,
		queries:  deps.Queries,
		log:      deps.Logger.With(slog.String("component", "rest")),
	}

	r.Get("/health", healthHandler(deps.Version))

	r.Route("/v1/campaigns", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.save)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})

	return r
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
