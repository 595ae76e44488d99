package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/ports"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// Initialize the place cache schema for the given dialect.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var fetchedAtType string
	switch dialect {
	case DialectSQLite:
		fetchedAtType = "INTEGER"
	case DialectPostgres:
		fetchedAtType = "BIGINT"
	default:
		return fmt.Errorf("init schema: unknown dialect %q", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlaceCacheQuery := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS place_cache (
        query_key TEXT PRIMARY KEY,
        results TEXT NOT NULL,
        fetched_at %s NOT NULL
    );
	`, fetchedAtType)

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_place_cache_fetched_at
    ON place_cache(fetched_at);
	`

	statements := []string{
		createPlaceCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	Query  string         `json:"query"`
	Places []domain.Place `json:"places"`
}

// Populate the place cache from a JSON file of query -> places entries.
// keyFn must match the key the place finder uses for lookups.
func SeedPlacesFromJSON(ctx context.Context, cache ports.PlaceCache, jsonPath string, keyFn func(string) string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed places: parse json: %w", err)
	}

	for i, item := range data {
		q := strings.TrimSpace(item.Query)
		if q == "" {
			return i, fmt.Errorf("seed places: item at index %d: query cannot be empty", i+1)
		}

		if err := cache.Put(ctx, keyFn(q), item.Places); err != nil {
			return i, fmt.Errorf("seed places: query %q: %w", q, err)
		}
	}

	return len(data), nil
}
