package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	defaultRoutesURL = "https://routes.googleapis.com/directions/v2:computeRoutes"
	defaultPlacesURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"
)

type Config struct {
	AppEnv string `validate:"required,oneof=development production test"`
	Port   string `validate:"required,numeric"`

	RoutesAPIKey string `validate:"required"`
	RoutesURL    string `validate:"required,url"`
	PlacesAPIKey string `validate:"required"`
	PlacesURL    string `validate:"required,url"`

	// DatabaseURL selects Postgres when set; otherwise DBPath is opened with SQLite.
	DatabaseURL string
	DBPath      string `validate:"required_without=DatabaseURL"`
	SeedPath    string

	PlaceCacheTTL   time.Duration `validate:"gte=0"`
	UpstreamTimeout time.Duration `validate:"gt=0"`
	CORSOrigins     []string      `validate:"min=1,dive,required"`
}

// Get returns the environment value for key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadDotEnv loads .env into the process environment. A missing file is reported
// so the caller can log it; existing variables are never overridden.
func LoadDotEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	mapsKey := Get("GOOGLE_MAPS_KEY", "")
	routesKey := Get("GOOGLE_ROUTES_API_KEY", mapsKey)
	if mapsKey == "" {
		mapsKey = routesKey
	}

	cfg := Config{
		AppEnv:       Get("APP_ENV", "development"),
		Port:         Get("PORT", "8080"),
		RoutesAPIKey: routesKey,
		RoutesURL:    Get("GOOGLE_ROUTES_API_URL", defaultRoutesURL),
		PlacesAPIKey: mapsKey,
		PlacesURL:    Get("PLACES_API", defaultPlacesURL),
		DatabaseURL:  Get("DATABASE_URL", ""),
		DBPath:       Get("DB_PATH", "data/app.db"),
		SeedPath:     Get("SEED_PATH", ""),
		CORSOrigins:  splitList(Get("CORS_ORIGINS", "*")),
	}

	var err error
	if cfg.PlaceCacheTTL, err = getDuration("PLACE_CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.UpstreamTimeout, err = getDuration("UPSTREAM_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
