package chi

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/webhook-relay/relay"
	"github.com/marcelsud/webhook-relay/routes"
	"github.com/rs/zerolog"
)

// NewLogger builds the JSON request logger shared by both routers
func NewLogger(service string) zerolog.Logger {
	return httplog.NewLogger(service, httplog.Options{
		JSON: true,
	})
}

// RelayHandlers accepts POSTs on every path under mountPath and hands them to the dispatcher
func RelayHandlers(ctx context.Context, service relay.UseCase, logger zerolog.Logger, mountPath string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	pattern := strings.TrimSuffix(mountPath, "/") + "/*"
	r.Method(http.MethodPost, pattern, postRelay(service))

	return r
}

// AdminHandlers serves health, route listing and metrics on the admin listener.
// metricsHandler may be nil.
func AdminHandlers(ctx context.Context, table *routes.Table, metricsHandler http.Handler, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", getHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Method(http.MethodGet, "/routes", getRoutes(table))
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	return r
}
