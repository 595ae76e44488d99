package ports

import (
	"context"
	"transit-directions-service/internal/domain"
)

// Port: a boundary for storing place-search results by normalized query key.
type PlaceCache interface {
	// Return cached places for key; ok is false on a miss or an expired entry.
	Get(ctx context.Context, key string) (places []domain.Place, ok bool, err error)
	Put(ctx context.Context, key string, places []domain.Place) error
}
