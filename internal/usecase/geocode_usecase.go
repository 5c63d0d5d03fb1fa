package usecase

import "context"

// --- Output DTOs ---

// GeocodeOutput is the best match for a free-form address query.
type GeocodeOutput struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

// GeocodeUsecase defines the interface for forward address lookups.
// Geocoding is a convenience to fill in coordinates before matching and is
// never authoritative for assignment.
type GeocodeUsecase interface {
	GeocodeAddress(ctx context.Context, query string) (*GeocodeOutput, error)
}
