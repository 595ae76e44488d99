package google

import (
	"context"
	"fmt"
	"transit-directions-service/internal/directions"
	"transit-directions-service/internal/domain"
)

// MockRoutesProvider returns fixed routes and records the last query.
type MockRoutesProvider struct {
	Routes    []directions.RawRoute
	Err       error
	LastQuery domain.RouteQuery
	Calls     int
}

func (p *MockRoutesProvider) ComputeRoutes(ctx context.Context, query domain.RouteQuery) ([]directions.RawRoute, error) {
	p.Calls++
	p.LastQuery = query
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Routes, nil
}

// MockPlacesProvider answers place searches from a fixed text -> places map.
type MockPlacesProvider struct {
	m     map[string][]domain.Place
	Calls int
}

func NewMockPlacesProvider(results map[string][]domain.Place) *MockPlacesProvider {
	return &MockPlacesProvider{m: results}
}

func (p *MockPlacesProvider) SearchPlaces(ctx context.Context, text string, near *domain.Coordinate) ([]domain.Place, error) {
	p.Calls++
	places, ok := p.m[text]
	if !ok {
		return nil, fmt.Errorf("missing places for %q", text)
	}
	return places, nil
}
