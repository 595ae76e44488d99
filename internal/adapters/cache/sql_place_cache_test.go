package cache

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"
	"transit-directions-service/internal/adapters/repositories"
	"transit-directions-service/internal/platform/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openPostgres connects to TEST_DATABASE_URL, skipping when it is unset.
func openPostgres(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	conn, err := db.Open(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, repositories.InitSchema(conn, repositories.DialectPostgres))
	return conn
}

func testKey(t *testing.T, conn *sql.DB) string {
	t.Helper()
	key := "test-" + uuid.NewString()
	t.Cleanup(func() {
		_, _ = conn.Exec(`DELETE FROM place_cache WHERE query_key = $1`, key)
	})
	return key
}

func TestSQLPlaceCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	conn := openPostgres(t)
	key := testKey(t, conn)
	c := NewSQLPlaceCache(conn, time.Hour)

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(ctx, key, testPlaces()))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, testPlaces(), got)
}

func TestSQLPlaceCacheUpsert(t *testing.T) {
	ctx := context.Background()
	conn := openPostgres(t)
	key := testKey(t, conn)
	c := NewSQLPlaceCache(conn, 0)

	require.NoError(t, c.Put(ctx, key, testPlaces()))
	require.NoError(t, c.Put(ctx, key, nil))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestSQLPlaceCacheExpiry(t *testing.T) {
	ctx := context.Background()
	conn := openPostgres(t)
	key := testKey(t, conn)

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewSQLPlaceCache(conn, time.Hour)
	c.now = func() time.Time { return clock }

	require.NoError(t, c.Put(ctx, key, testPlaces()))

	clock = clock.Add(59 * time.Minute)
	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	clock = clock.Add(2 * time.Minute)
	_, ok, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpired(t *testing.T) {
	now := time.Unix(10_000, 0)

	assert.False(t, expired(now.Unix()-3600, time.Hour, now))
	assert.True(t, expired(now.Unix()-3601, time.Hour, now))
	assert.False(t, expired(0, 0, now))
	assert.False(t, expired(0, -time.Second, now))
}

func TestDecodePlaces(t *testing.T) {
	got, err := decodePlaces("null")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = decodePlaces("{not json")
	assert.Error(t, err)

	raw, err := encodePlaces(testPlaces())
	require.NoError(t, err)
	got, err = decodePlaces(raw)
	require.NoError(t, err)
	assert.Equal(t, testPlaces(), got)
}
