package impl

import (
	"context"
	"log/slog"

	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/service"
	"atlas/internal/usecase"

	"github.com/pkg/errors"
)

type geocodeService struct {
	geocoder service.GeocodingService
	logger   *slog.Logger
}

// NewGeocodeService is the constructor for geocodeService.
func NewGeocodeService(geocoder service.GeocodingService, logger *slog.Logger) usecase.GeocodeUsecase {
	return &geocodeService{
		geocoder: geocoder,
		logger:   logger,
	}
}

// GeocodeAddress resolves a free-form address through the external provider.
// The result only pre-fills coordinates for a quote form; assignment always
// validates and matches the point on its own.
func (srv *geocodeService) GeocodeAddress(ctx context.Context, query string) (*usecase.GeocodeOutput, error) {
	result, err := srv.geocoder.Geocode(ctx, query)
	if err != nil {
		if errors.Is(err, service.ErrGeocodeNoResult) {
			return nil, errors.Wrap(domainerrors.ErrGeocodeNoResult, "geocode address")
		}

		srv.logger.Error("geocoding provider call failed", "error", err)

		return nil, domainerrors.ErrGeocodeUnavailable.WrapMessage(err.Error())
	}

	if !coordinatesInRange(result.Latitude, result.Longitude) {
		return nil, domainerrors.ErrGeocodeUnavailable.WrapMessage("provider returned out-of-range coordinates")
	}

	return &usecase.GeocodeOutput{
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		DisplayName: result.DisplayName,
	}, nil
}
