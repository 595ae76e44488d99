package domain

// Represents a single place-search result.
type Place struct {
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Geometry         PlaceGeometry `json:"geometry"`
}

type PlaceGeometry struct {
	Location Coordinate `json:"location"`
}
