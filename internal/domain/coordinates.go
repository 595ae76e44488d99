package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidLocationFormat reports a location string that is not "lat,lng".
var ErrInvalidLocationFormat = errors.New("invalid location format")

// InvalidLocationError names the request parameter whose location was rejected.
type InvalidLocationError struct {
	Param string
	Err   error
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Param, e.Err)
}

func (e *InvalidLocationError) Unwrap() error { return e.Err }

// Immutable geographic coordinate pair.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// ParseLocation parses a "<lat>,<lng>" string.
// Both parts must be finite numbers; the error carries the original input.
func ParseLocation(location string) (Coordinate, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidLocationFormat, location)
	}

	lat, err := parseComponent(parts[0])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidLocationFormat, location)
	}

	lng, err := parseComponent(parts[1])
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidLocationFormat, location)
	}

	return Coordinate{Latitude: lat, Longitude: lng}, nil
}

func parseComponent(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("not a finite number")
	}
	return f, nil
}

// Return the coordinate as "lat,lng" for upstream location bias parameters.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
