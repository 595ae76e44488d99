package main

import (
	"context"
	"flag"
	"log"
	"time"
	"transit-directions-service/internal/adapters/cache"
	"transit-directions-service/internal/adapters/repositories"
	"transit-directions-service/internal/config"
	"transit-directions-service/internal/platform/db"
	"transit-directions-service/internal/platform/logger"
	"transit-directions-service/internal/services"

	"go.uber.org/zap"
)

// dbtool bootstraps the Postgres place cache schema and optionally seeds it.
func main() {
	dotenvErr := config.LoadDotEnv()

	seedPath := flag.String("seed", config.Get("SEED_PATH", ""), "JSON file of place search results to preload")
	flag.Parse()

	zl, err := logger.New(config.Get("APP_ENV", "development"), "dbtool")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	if dotenvErr != nil {
		zl.Info("no .env file found (using environment variables)")
	}

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		zl.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		zl.Fatal("open database", zap.Error(err))
	}
	defer conn.Close()

	zl.Info("initializing database schema")
	if err := repositories.InitSchema(conn, repositories.DialectPostgres); err != nil {
		zl.Fatal("schema initialization failed", zap.Error(err))
	}
	zl.Info("schema ready")

	if *seedPath == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	zl.Info("seeding place cache", zap.String("path", *seedPath))
	pc := cache.NewSQLPlaceCache(conn, 0)
	n, err := repositories.SeedPlacesFromJSON(ctx, pc, *seedPath, services.PlaceKey)
	if err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}
	zl.Info("seeding complete", zap.Int("entries", n))
}
