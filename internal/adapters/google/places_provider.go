package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/platform/obs"
	"transit-directions-service/internal/ports"
)

const DefaultPlacesURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

type textSearchResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []domain.Place `json:"results"`
}

// PlacesProvider implements PlaceSearcher using Places text search.
type PlacesProvider struct {
	http     *client
	apiKey   string
	endpoint string
}

func NewPlacesProvider(apiKey, endpoint string, timeout time.Duration) (*PlacesProvider, error) {
	if apiKey == "" {
		return nil, errors.New("Google Maps API key is required")
	}
	if endpoint == "" {
		endpoint = DefaultPlacesURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &PlacesProvider{
		http:     newClient(timeout),
		apiKey:   apiKey,
		endpoint: endpoint,
	}, nil
}

// SearchPlaces resolves free text into candidate places, biased towards
// near when it is non-nil. ZERO_RESULTS is an empty result, not an error.
func (p *PlacesProvider) SearchPlaces(
	ctx context.Context,
	text string,
	near *domain.Coordinate,
) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "google.SearchPlaces")(&err)

	resp, err := p.http.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := p.http.newRequest(ctx, http.MethodGet, p.endpoint, nil, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("query", text)
		q.Set("fields", "formatted_address,name,geometry")
		q.Set("key", p.apiKey)
		if near != nil {
			q.Set("location", near.String())
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return nil, upstreamError("Google Places API error", err)
	}
	defer resp.Body.Close()

	var decoded textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, upstreamError("decode text search response", err)
	}

	switch decoded.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []domain.Place{}, nil
	default:
		msg := decoded.ErrorMessage
		if msg == "" {
			msg = fmt.Sprintf("API returned status: %s", decoded.Status)
		}
		return nil, fmt.Errorf("search places: %w: %s", ports.ErrUpstreamUnavailable, msg)
	}

	if decoded.Results == nil {
		return []domain.Place{}, nil
	}
	return decoded.Results, nil
}
