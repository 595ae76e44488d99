package services

import (
	"context"
	"errors"
	"testing"
	"time"
	"transit-directions-service/internal/adapters/google"
	"transit-directions-service/internal/directions"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/ports"
)

func TestFindRoute(t *testing.T) {
	provider := &google.MockRoutesProvider{
		Routes: []directions.RawRoute{
			{
				"duration": "3600s",
				"legs": []any{
					map[string]any{"travelMode": "WALKING"},
					map[string]any{"arrivalTime": "2026-01-01T09:00:00Z"},
				},
				"travelAdvisory": map[string]any{
					"transitFare": map[string]any{"value": float64(275), "currencyCode": "USD"},
				},
			},
		},
	}

	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	route, err := FindRoute(context.Background(), provider, "40.7128,-74.0060", "40.7580,-73.9855", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if route.Language != "en" {
		t.Fatalf("language = %q, want en", route.Language)
	}
	if len(route.Routes) != 1 {
		t.Fatalf("expected 1 route, got %d", len(route.Routes))
	}

	opt := route.Routes[0]
	if opt.DurationSeconds != 3600 {
		t.Fatalf("duration = %d, want 3600", opt.DurationSeconds)
	}
	if opt.RouteArrivalTime != "2026-01-01T09:00:00Z" {
		t.Fatalf("arrival = %q, want 2026-01-01T09:00:00Z", opt.RouteArrivalTime)
	}
	if opt.Price.Formatted != "USD 275" {
		t.Fatalf("price = %q, want USD 275", opt.Price.Formatted)
	}
	if opt.Legs[1].TravelMode != "TRANSIT" {
		t.Fatalf("second leg mode = %q, want TRANSIT", opt.Legs[1].TravelMode)
	}

	q := provider.LastQuery
	if q.Start.Latitude != 40.7128 || q.End.Longitude != -73.9855 {
		t.Fatalf("query = %+v", q)
	}
	if !q.DepartAt.Equal(now) {
		t.Fatalf("DepartAt = %v, want %v", q.DepartAt, now)
	}
}

func TestFindRouteNoRoutes(t *testing.T) {
	provider := &google.MockRoutesProvider{}

	route, err := FindRoute(context.Background(), provider, "1,2", "3,4", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.Routes == nil || len(route.Routes) != 0 {
		t.Fatalf("routes = %#v, want empty slice", route.Routes)
	}
}

func TestFindRouteInvalidLocation(t *testing.T) {
	provider := &google.MockRoutesProvider{}

	_, err := FindRoute(context.Background(), provider, "abc,def", "3,4", time.Now())
	if !errors.Is(err, domain.ErrInvalidLocationFormat) {
		t.Fatalf("expected ErrInvalidLocationFormat, got %v", err)
	}
	if provider.Calls != 0 {
		t.Fatalf("provider called %d times, want 0", provider.Calls)
	}
}

func TestFindRouteUpstreamError(t *testing.T) {
	provider := &google.MockRoutesProvider{Err: ports.ErrUpstreamUnavailable}

	_, err := FindRoute(context.Background(), provider, "1,2", "3,4", time.Now())
	if !errors.Is(err, ports.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}
