// Package directions normalizes loosely shaped upstream directions
// responses into a stable route model.
//
// Raw values are decoded JSON objects. Only a handful of fields are
// interpreted; every other field is carried through to the output, so the
// emitted JSON is open-ended beyond the keys documented here.
package directions

import "encoding/json"

// RawRoute is one upstream route alternative as decoded from JSON.
type RawRoute = map[string]any

// RawLeg is one upstream leg as decoded from JSON.
type RawLeg = map[string]any

// RawStep is one upstream step as decoded from JSON.
type RawStep = map[string]any

const (
	DefaultLegTravelMode  = "TRANSIT"
	DefaultStepTravelMode = "WALKING"
	PriceUnavailable      = "N/A"
)

// Route is the normalized directions response returned to callers.
type Route struct {
	Routes   []RouteOption `json:"routes"`
	Language string        `json:"language"`
}

// RouteOption is one normalized itinerary. Fields holds the raw upstream
// fields; the typed fields override raw keys of the same name when encoded.
type RouteOption struct {
	RouteArrivalTime string
	DurationSeconds  int64
	Price            Price
	Legs             []Leg
	Fields           map[string]any
}

func (o RouteOption) MarshalJSON() ([]byte, error) {
	out := copyFields(o.Fields)
	out["route_arrival_time"] = o.RouteArrivalTime
	out["duration_seconds"] = o.DurationSeconds
	out["price"] = o.Price
	legs := o.Legs
	if legs == nil {
		legs = []Leg{}
	}
	out["legs"] = legs
	return json.Marshal(out)
}

// Leg is one normalized leg. Steps is nil when the upstream leg carried
// no steps array, in which case the raw "steps" value (if any) is kept.
type Leg struct {
	TravelMode string
	Steps      []Step
	Fields     map[string]any
}

func (l Leg) MarshalJSON() ([]byte, error) {
	out := copyFields(l.Fields)
	out["travel_mode"] = l.TravelMode
	if l.Steps != nil {
		out["steps"] = l.Steps
	}
	return json.Marshal(out)
}

// Step is one normalized step; transit details stay in Fields untouched.
type Step struct {
	TravelMode string
	Fields     map[string]any
}

func (s Step) MarshalJSON() ([]byte, error) {
	out := copyFields(s.Fields)
	out["travel_mode"] = s.TravelMode
	return json.Marshal(out)
}

// Price is the fare of a route option. Fields holds the raw fare object.
type Price struct {
	Formatted string
	Fields    map[string]any
}

func (p Price) MarshalJSON() ([]byte, error) {
	out := copyFields(p.Fields)
	out["formatted"] = p.Formatted
	return json.Marshal(out)
}

func copyFields(src map[string]any) map[string]any {
	out := make(map[string]any, len(src)+4)
	for k, v := range src {
		out[k] = v
	}
	return out
}
