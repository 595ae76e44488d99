package cache

import (
	"encoding/json"
	"fmt"
	"time"
	"transit-directions-service/internal/domain"
)

func encodePlaces(places []domain.Place) (string, error) {
	if places == nil {
		places = []domain.Place{}
	}
	b, err := json.Marshal(places)
	if err != nil {
		return "", fmt.Errorf("encode places: %w", err)
	}
	return string(b), nil
}

func decodePlaces(raw string) ([]domain.Place, error) {
	var places []domain.Place
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return nil, fmt.Errorf("decode places: %w", err)
	}
	if places == nil {
		places = []domain.Place{}
	}
	return places, nil
}

// A zero or negative ttl never expires.
func expired(fetchedAt int64, ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(time.Unix(fetchedAt, 0)) > ttl
}
