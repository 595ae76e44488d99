package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"transit-directions-service/internal/adapters/cache"
	"transit-directions-service/internal/adapters/google"
	"transit-directions-service/internal/adapters/repositories"
	"transit-directions-service/internal/api"
	"transit-directions-service/internal/config"
	"transit-directions-service/internal/platform/db"
	"transit-directions-service/internal/platform/logger"
	"transit-directions-service/internal/ports"
	"transit-directions-service/internal/services"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Google, SQL cache) behind ports and starts the HTTP server.
func main() {
	dotenvErr := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.AppEnv, "transit-directions")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	if dotenvErr != nil {
		zl.Info("no .env file found (using environment variables)")
	}

	conn, placeCache, err := openPlaceCache(cfg)
	if err != nil {
		zl.Fatal("open place cache", zap.Error(err))
	}
	defer conn.Close()

	if cfg.SeedPath != "" {
		n, err := repositories.SeedPlacesFromJSON(context.Background(), placeCache, cfg.SeedPath, services.PlaceKey)
		if err != nil {
			zl.Fatal("seed place cache", zap.String("path", cfg.SeedPath), zap.Error(err))
		}
		zl.Info("place cache seeded", zap.Int("entries", n))
	}

	routes, err := google.NewRoutesProvider(cfg.RoutesAPIKey, cfg.RoutesURL, cfg.UpstreamTimeout)
	if err != nil {
		zl.Fatal("routes provider", zap.Error(err))
	}
	places, err := google.NewPlacesProvider(cfg.PlacesAPIKey, cfg.PlacesURL, cfg.UpstreamTimeout)
	if err != nil {
		zl.Fatal("places provider", zap.Error(err))
	}

	router := api.NewRouter(api.RouterConfig{
		Directions:  routes,
		Places:      &services.PlaceFinder{Searcher: places, Cache: placeCache},
		CORSOrigins: cfg.CORSOrigins,
		Logger:      zl,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.UpstreamTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zl.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("http server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("http server forced shutdown", zap.Error(err))
	}

	zl.Info("server stopped")
}

// openPlaceCache uses Postgres when DATABASE_URL is set and local SQLite otherwise.
func openPlaceCache(cfg config.Config) (*sql.DB, ports.PlaceCache, error) {
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(conn, repositories.DialectPostgres); err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("open place cache: %w", err)
		}
		return conn, cache.NewSQLPlaceCache(conn, cfg.PlaceCacheTTL), nil
	}

	conn, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := repositories.InitSchema(conn, repositories.DialectSQLite); err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open place cache: %w", err)
	}
	return conn, cache.NewSqlitePlaceCache(conn, cfg.PlaceCacheTTL), nil
}
