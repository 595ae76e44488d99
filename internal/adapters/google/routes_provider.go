package google

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"transit-directions-service/internal/directions"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/platform/obs"
)

const (
	DefaultRoutesURL = "https://routes.googleapis.com/directions/v2:computeRoutes"

	defaultFieldMask = "routes.duration,routes.distanceMeters,routes.legs," +
		"routes.travelAdvisory,routes.localizedValues,routes.polyline.encodedPolyline"
)

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type location struct {
	LatLng latLng `json:"latLng"`
}

type waypoint struct {
	Location location `json:"location"`
}

type computeRoutesRequest struct {
	Origin                   waypoint `json:"origin"`
	Destination              waypoint `json:"destination"`
	TravelMode               string   `json:"travelMode"`
	DepartureTime            string   `json:"departureTime,omitempty"`
	ComputeAlternativeRoutes bool     `json:"computeAlternativeRoutes"`
	LanguageCode             string   `json:"languageCode"`
}

// RoutesProvider implements DirectionsProvider using the Google Routes API
// (computeRoutes, transit mode).
//
// The provider is safe for concurrent use.
type RoutesProvider struct {
	http      *client
	apiKey    string
	endpoint  string
	fieldMask string
	language  string
}

func NewRoutesProvider(apiKey, endpoint string, timeout time.Duration) (*RoutesProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Google Routes API key is required")
	}
	if endpoint == "" {
		endpoint = DefaultRoutesURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RoutesProvider{
		http:      newClient(timeout),
		apiKey:    apiKey,
		endpoint:  endpoint,
		fieldMask: defaultFieldMask,
		language:  "en",
	}, nil
}

func toWaypoint(c domain.Coordinate) waypoint {
	return waypoint{Location: location{LatLng: latLng{Latitude: c.Latitude, Longitude: c.Longitude}}}
}

// ComputeRoutes requests transit alternatives departing at query.DepartAt.
func (p *RoutesProvider) ComputeRoutes(
	ctx context.Context,
	query domain.RouteQuery,
) (_ []directions.RawRoute, err error) {
	defer obs.Time(ctx, "google.ComputeRoutes")(&err)

	bodyObj := computeRoutesRequest{
		Origin:                   toWaypoint(query.Start),
		Destination:              toWaypoint(query.End),
		TravelMode:               "TRANSIT",
		ComputeAlternativeRoutes: true,
		LanguageCode:             p.language,
	}
	if !query.DepartAt.IsZero() {
		bodyObj.DepartureTime = query.DepartAt.UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal compute routes request: %w", err)
	}

	headers := map[string]string{
		"X-Goog-Api-Key":   p.apiKey,
		"X-Goog-FieldMask": p.fieldMask,
	}

	resp, err := p.http.doWithRetry(ctx, func() (*http.Request, error) {
		return p.http.newRequest(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload), headers)
	})
	if err != nil {
		return nil, upstreamError("Google Routes API error", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstreamError("read compute routes response", err)
	}

	routes, err := directions.DecodeRoutes(body)
	if err != nil {
		return nil, upstreamError("decode compute routes response", err)
	}

	return routes, nil
}
