package services

import (
	"context"
	"errors"
	"testing"
	"transit-directions-service/internal/adapters/google"
	"transit-directions-service/internal/domain"
)

type memoryPlaceCache struct {
	m       map[string][]domain.Place
	putErr  error
	getErr  error
	lastKey string
}

func newMemoryPlaceCache() *memoryPlaceCache {
	return &memoryPlaceCache{m: map[string][]domain.Place{}}
}

func (c *memoryPlaceCache) Get(ctx context.Context, key string) ([]domain.Place, bool, error) {
	c.lastKey = key
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	p, ok := c.m[key]
	return p, ok, nil
}

func (c *memoryPlaceCache) Put(ctx context.Context, key string, places []domain.Place) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.m[key] = places
	return nil
}

var timesSquare = []domain.Place{{Name: "Times Square", FormattedAddress: "Manhattan, NY 10036, USA"}}

func TestPlaceFinderCachesResults(t *testing.T) {
	searcher := google.NewMockPlacesProvider(map[string][]domain.Place{"Times  Square": timesSquare})
	c := newMemoryPlaceCache()
	finder := &PlaceFinder{Searcher: searcher, Cache: c}

	for i := 0; i < 2; i++ {
		places, err := finder.Find(context.Background(), "Times  Square", "")
		if err != nil {
			t.Fatalf("find #%d: unexpected error: %v", i+1, err)
		}
		if len(places) != 1 || places[0].Name != "Times Square" {
			t.Fatalf("find #%d: places = %+v", i+1, places)
		}
	}

	if searcher.Calls != 1 {
		t.Fatalf("searcher called %d times, want 1", searcher.Calls)
	}
	if c.lastKey != "times square" {
		t.Fatalf("cache key = %q, want %q", c.lastKey, "times square")
	}
}

func TestPlaceFinderBiasIsPartOfKey(t *testing.T) {
	searcher := google.NewMockPlacesProvider(map[string][]domain.Place{"museum": timesSquare})
	c := newMemoryPlaceCache()
	finder := &PlaceFinder{Searcher: searcher, Cache: c}

	if _, err := finder.Find(context.Background(), "museum", "40.7128,-74.0060"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.lastKey != "museum@40.7128,-74.006" {
		t.Fatalf("cache key = %q", c.lastKey)
	}
}

func TestPlaceFinderCacheFailuresAreNotFatal(t *testing.T) {
	searcher := google.NewMockPlacesProvider(map[string][]domain.Place{"museum": timesSquare})
	c := newMemoryPlaceCache()
	c.getErr = errors.New("disk on fire")
	c.putErr = errors.New("disk on fire")
	finder := &PlaceFinder{Searcher: searcher, Cache: c}

	places, err := finder.Find(context.Background(), "museum", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("places = %+v", places)
	}
}

func TestPlaceFinderWithoutCache(t *testing.T) {
	searcher := google.NewMockPlacesProvider(map[string][]domain.Place{"museum": timesSquare})
	finder := &PlaceFinder{Searcher: searcher}

	if _, err := finder.Find(context.Background(), "museum", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := finder.Find(context.Background(), "museum", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if searcher.Calls != 2 {
		t.Fatalf("searcher called %d times, want 2", searcher.Calls)
	}
}

func TestPlaceFinderValidation(t *testing.T) {
	finder := &PlaceFinder{Searcher: google.NewMockPlacesProvider(nil)}

	if _, err := finder.Find(context.Background(), "   ", ""); !errors.Is(err, ErrMissingQuery) {
		t.Fatalf("expected ErrMissingQuery, got %v", err)
	}

	_, err := finder.Find(context.Background(), "museum", "here")
	if !errors.Is(err, domain.ErrInvalidLocationFormat) {
		t.Fatalf("expected ErrInvalidLocationFormat, got %v", err)
	}
}
