package directions

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseDuration converts an upstream duration into whole seconds.
//
// Numbers are taken as seconds. Strings may carry a trailing "s" unit
// ("3600s"). Anything that does not yield a finite, non-negative number
// of seconds returns 0 rather than failing.
func ParseDuration(v any) int64 {
	switch d := v.(type) {
	case float64:
		return secondsFromFloat(d)
	case float32:
		return secondsFromFloat(float64(d))
	case int:
		return clampSeconds(int64(d))
	case int32:
		return clampSeconds(int64(d))
	case int64:
		return clampSeconds(d)
	case json.Number:
		if n, err := d.Int64(); err == nil {
			return clampSeconds(n)
		}
		f, err := d.Float64()
		if err != nil {
			return 0
		}
		return secondsFromFloat(f)
	case string:
		return parseDurationText(d)
	default:
		return 0
	}
}

func parseDurationText(s string) int64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "s")
	if s == "" {
		return 0
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return clampSeconds(n)
	}

	// Protobuf duration JSON may carry fractional seconds ("1.5s").
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return secondsFromFloat(f)
}

func secondsFromFloat(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

func clampSeconds(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
