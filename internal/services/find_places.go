package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"transit-directions-service/internal/domain"
	"transit-directions-service/internal/ports"

	"go.uber.org/zap"
)

var ErrMissingQuery = errors.New("destination query must be non-empty")

// PlaceFinder resolves destination text into places, consulting an
// optional cache before the searcher.
type PlaceFinder struct {
	Searcher ports.PlaceSearcher
	Cache    ports.PlaceCache
}

// PlaceKey collapses whitespace and case so equivalent queries share an entry.
func PlaceKey(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

func placeCacheKey(text string, near *domain.Coordinate) string {
	key := PlaceKey(text)
	if near != nil {
		key += "@" + near.String()
	}
	return key
}

// Find searches for text, biased towards currentLocation when it is set.
func (f *PlaceFinder) Find(ctx context.Context, text string, currentLocation string) ([]domain.Place, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrMissingQuery
	}

	var near *domain.Coordinate
	if strings.TrimSpace(currentLocation) != "" {
		c, err := domain.ParseLocation(currentLocation)
		if err != nil {
			return nil, fmt.Errorf("find places: %w", &domain.InvalidLocationError{Param: "currentLocation", Err: err})
		}
		near = &c
	}

	key := placeCacheKey(text, near)

	if f.Cache != nil {
		places, ok, err := f.Cache.Get(ctx, key)
		if err != nil {
			zap.L().Warn("place cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return places, nil
		}
	}

	places, err := f.Searcher.SearchPlaces(ctx, text, near)
	if err != nil {
		return nil, fmt.Errorf("find places: search %q: %w", text, err)
	}

	if f.Cache != nil {
		if err := f.Cache.Put(ctx, key, places); err != nil {
			zap.L().Warn("place cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return places, nil
}
