package ports

import (
	"context"
	"transit-directions-service/internal/domain"
)

// Contract for free-text place lookup, optionally biased towards a location.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, text string, near *domain.Coordinate) ([]domain.Place, error)
}
