package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/platform/obs"
)

// SQLite backed cache mapping normalized place queries to search results.
// Keys are expected to be consistent (e.g., normalized) by the caller.
type SqlitePlaceCache struct {
	DB  *sql.DB
	TTL time.Duration

	now func() time.Time
}

func NewSqlitePlaceCache(db *sql.DB, ttl time.Duration) *SqlitePlaceCache {
	return &SqlitePlaceCache{DB: db, TTL: ttl, now: time.Now}
}

// Fetch cached places for key. Entries older than TTL are misses.
func (s *SqlitePlaceCache) Get(ctx context.Context, key string) (_ []domain.Place, _ bool, err error) {
	defer obs.Time(ctx, "place.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("place cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, errors.New("get place cache: key must not be empty")
	}

	q := `
	SELECT
        results,
        fetched_at
    FROM place_cache
    WHERE query_key = ?;
	`

	var raw string
	var fetchedAt int64
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&raw, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get place cache: query place_cache table: %w", err)
	}

	if expired(fetchedAt, s.TTL, s.now()) {
		return nil, false, nil
	}

	places, err := decodePlaces(raw)
	if err != nil {
		return nil, false, fmt.Errorf("get place cache key=%q: %w", key, err)
	}

	return places, true, nil
}

// Store the places for key, replacing any previous entry.
func (s *SqlitePlaceCache) Put(ctx context.Context, key string, places []domain.Place) error {
	if s.DB == nil {
		return errors.New("place cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("insert place cache: empty query key")
	}

	raw, err := encodePlaces(places)
	if err != nil {
		return fmt.Errorf("insert place cache key=%q: %w", key, err)
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO place_cache (
        query_key,
        results,
        fetched_at
    )
    VALUES (?, ?, ?);
	`, key, raw, s.now().Unix())
	if err != nil {
		return fmt.Errorf("insert place cache key=%q: %w", key, err)
	}

	return nil
}
