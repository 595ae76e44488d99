package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"APP_ENV", "PORT", "GOOGLE_ROUTES_API_KEY", "GOOGLE_MAPS_KEY",
		"GOOGLE_ROUTES_API_URL", "PLACES_API", "DATABASE_URL", "DB_PATH",
		"SEED_PATH", "PLACE_CACHE_TTL", "UPSTREAM_TIMEOUT", "CORS_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_MAPS_KEY", "maps-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "maps-key", cfg.RoutesAPIKey)
	assert.Equal(t, "maps-key", cfg.PlacesAPIKey)
	assert.Equal(t, defaultRoutesURL, cfg.RoutesURL)
	assert.Equal(t, defaultPlacesURL, cfg.PlacesURL)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.PlaceCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadRoutesKeyTakesPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_ROUTES_API_KEY", "routes-key")
	t.Setenv("GOOGLE_MAPS_KEY", "maps-key")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://example.com ,")
	t.Setenv("PLACE_CACHE_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "routes-key", cfg.RoutesAPIKey)
	assert.Equal(t, "maps-key", cfg.PlacesAPIKey)
	assert.Equal(t, 90*time.Minute, cfg.PlaceCacheTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing api key", env: map[string]string{}},
		{name: "bad port", env: map[string]string{"GOOGLE_MAPS_KEY": "k", "PORT": "http"}},
		{name: "bad env", env: map[string]string{"GOOGLE_MAPS_KEY": "k", "APP_ENV": "staging"}},
		{name: "bad ttl", env: map[string]string{"GOOGLE_MAPS_KEY": "k", "PLACE_CACHE_TTL": "soon"}},
		{name: "bad url", env: map[string]string{"GOOGLE_MAPS_KEY": "k", "PLACES_API": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGet(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "  value ")
	assert.Equal(t, "value", Get("CONFIG_TEST_KEY", "fallback"))

	t.Setenv("CONFIG_TEST_KEY", "")
	assert.Equal(t, "fallback", Get("CONFIG_TEST_KEY", "fallback"))
}
