package services

import (
	"context"
	"fmt"
	"time"
	"transit-directions-service/internal/directions"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/ports"
)

// ResponseLanguage is the language reported in every normalized route.
const ResponseLanguage = "en"

// Find transit directions between two "lat,lng" locations.
//
// Invalid locations fail before any upstream call and wrap
// domain.ErrInvalidLocationFormat. now is both the requested departure time
// and the reference for arrival-time fallbacks.
func FindRoute(
	ctx context.Context,
	provider ports.DirectionsProvider,
	startLocation string,
	endLocation string,
	now time.Time,
) (directions.Route, error) {
	query, err := domain.NewRouteQuery(startLocation, endLocation, now)
	if err != nil {
		return directions.Route{}, fmt.Errorf("find route: %w", err)
	}

	raw, err := provider.ComputeRoutes(ctx, query)
	if err != nil {
		return directions.Route{}, fmt.Errorf("find route: compute routes: %w", err)
	}

	return directions.AssembleResponse(raw, ResponseLanguage, now), nil
}
