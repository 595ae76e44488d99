package directions

import (
	"math"
	"time"
)

// ResolveArrivalTime returns the arrival timestamp of a route option.
//
// Only the last leg is consulted: an explicit arrivalTime wins, then its
// departureTime plus the leg duration. Without either, the arrival is
// now plus the route-level duration.
func ResolveArrivalTime(route RawRoute, now time.Time) string {
	fallback := formatTimestamp(now.Add(seconds(ParseDuration(route["duration"]))))

	legs, ok := objectList(route, "legs")
	if !ok || len(legs) == 0 {
		return fallback
	}
	last := legs[len(legs)-1]

	if arrival, ok := stringField(last, "arrivalTime"); ok {
		return arrival
	}

	if departure, ok := stringField(last, "departureTime"); ok {
		t, err := time.Parse(time.RFC3339Nano, departure)
		if err != nil {
			return fallback
		}
		return formatTimestamp(t.Add(seconds(ParseDuration(last["duration"]))))
	}

	return fallback
}

// maxSeconds is the largest whole-second count a time.Duration can hold.
const maxSeconds = math.MaxInt64 / int64(time.Second)

func seconds(n int64) time.Duration {
	if n > maxSeconds {
		n = maxSeconds
	}
	return time.Duration(n) * time.Second
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
