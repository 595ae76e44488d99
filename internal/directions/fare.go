package directions

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ExtractPrice locates the transit fare of a route and formats it.
//
// travelAdvisory.transitFare is preferred over localizedValues.transitFare;
// the two are never merged. A pre-formatted text wins, then
// "<currencyCode> <value>". Zero is a valid fare.
func ExtractPrice(route RawRoute) Price {
	fare, ok := locateFare(route)
	if !ok {
		return Price{Formatted: PriceUnavailable}
	}

	price := Price{Formatted: PriceUnavailable, Fields: fare}

	if text, ok := stringField(fare, "text"); ok {
		price.Formatted = text
		return price
	}

	if value, ok := fareValue(fare["value"]); ok {
		code, _ := fare["currencyCode"].(string)
		price.Formatted = strings.TrimSpace(code + " " + value)
	}

	return price
}

func locateFare(route RawRoute) (map[string]any, bool) {
	for _, parent := range []string{"travelAdvisory", "localizedValues"} {
		container, ok := objectField(route, parent)
		if !ok {
			continue
		}
		if fare, ok := objectField(container, "transitFare"); ok {
			return fare, true
		}
	}
	return nil, false
}

// fareValue renders a fare amount; null and non-numeric values are absent.
func fareValue(v any) (string, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", false
		}
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case json.Number:
		return n.String(), true
	case string:
		return n, true
	default:
		return "", false
	}
}
