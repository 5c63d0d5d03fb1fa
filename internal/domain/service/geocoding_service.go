package service

import (
	"context"

	"atlas/internal/errors"
)

// ErrGeocodeNoResult is returned when the provider finds nothing for the query.
var ErrGeocodeNoResult = errors.New("no geocoding result")

// GeocodeResult represents a resolved location from a geocoding provider
type GeocodeResult struct {
	Latitude    float64 // WGS84 latitude
	Longitude   float64 // WGS84 longitude
	DisplayName string  // Provider's formatted address
}

// GeocodingService defines the interface for forward geocoding operations.
// Implementations talk to an external provider; results are best effort.
type GeocodingService interface {
	// Geocode resolves a free-form address into coordinates.
	// Returns the provider's best match or an error when nothing was found.
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
}
