package ports

import (
	"context"
	"errors"
	"transit-directions-service/internal/directions"
	"transit-directions-service/internal/domain"
)

// Contract for retrieving route alternatives from a directions service.
type DirectionsProvider interface {
	// Return the raw route alternatives for a query. A successful call with
	// no itinerary returns an empty slice.
	ComputeRoutes(ctx context.Context, query domain.RouteQuery) ([]directions.RawRoute, error)
}

// ErrUpstreamUnavailable reports that an upstream call failed or returned a
// non-success status. Adapters wrap it; handlers match it with errors.Is.
var ErrUpstreamUnavailable = errors.New("upstream service unavailable")
