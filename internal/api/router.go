package api

import (
	"net/http"
	"time"
	"transit-directions-service/internal/api/handlers"
	"transit-directions-service/internal/ports"
	"transit-directions-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Directions  ports.DirectionsProvider
	Places      *services.PlaceFinder
	CORSOrigins []string
	Logger      *zap.Logger
	Now         func() time.Time
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.L()
	}

	routeHandler := &handlers.RouteHandler{Provider: cfg.Directions, Now: cfg.Now}
	locationsHandler := &handlers.LocationsHandler{Finder: cfg.Places}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/route", routeHandler.Route)
		r.Get("/locations", locationsHandler.Locations)
	})

	return r
}
