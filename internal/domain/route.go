package domain

import (
	"fmt"
	"time"
)

// Represents a single directions request between two points.
// A RouteQuery is built once per request and not modified afterwards.
type RouteQuery struct {
	Start    Coordinate
	End      Coordinate
	DepartAt time.Time
}

// Parse both location strings and build the query departing at departAt.
func NewRouteQuery(start, end string, departAt time.Time) (RouteQuery, error) {
	s, err := ParseLocation(start)
	if err != nil {
		return RouteQuery{}, fmt.Errorf("new route query: %w", &InvalidLocationError{Param: "start_location", Err: err})
	}

	e, err := ParseLocation(end)
	if err != nil {
		return RouteQuery{}, fmt.Errorf("new route query: %w", &InvalidLocationError{Param: "end_location", Err: err})
	}

	return RouteQuery{Start: s, End: e, DepartAt: departAt}, nil
}
