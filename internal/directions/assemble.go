package directions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// AssembleRoute normalizes one upstream route alternative. now is the
// reference time for the arrival fallback.
func AssembleRoute(raw RawRoute, now time.Time) RouteOption {
	return RouteOption{
		RouteArrivalTime: ResolveArrivalTime(raw, now),
		DurationSeconds:  ParseDuration(raw["duration"]),
		Price:            ExtractPrice(raw),
		Legs:             transformLegs(raw),
		Fields:           raw,
	}
}

// AssembleResponse normalizes every route alternative. A nil slice is an
// empty result, not an error.
func AssembleResponse(raw []RawRoute, language string, now time.Time) Route {
	routes := make([]RouteOption, 0, len(raw))
	for _, r := range raw {
		routes = append(routes, AssembleRoute(r, now))
	}
	return Route{Routes: routes, Language: language}
}

type responseEnvelope struct {
	Routes []json.RawMessage `json:"routes"`
}

// DecodeRoutes extracts the route alternatives from a provider body.
// Missing or null routes decode to an empty slice; an element that is not
// an object becomes an empty route.
func DecodeRoutes(body []byte) ([]RawRoute, error) {
	var env responseEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode routes: %w", err)
	}

	out := make([]RawRoute, 0, len(env.Routes))
	for i, msg := range env.Routes {
		route := RawRoute{}
		trimmed := bytes.TrimSpace(msg)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			if err := json.Unmarshal(trimmed, &route); err != nil {
				return nil, fmt.Errorf("decode routes: route %d: %w", i, err)
			}
		}
		out = append(out, route)
	}

	return out, nil
}
