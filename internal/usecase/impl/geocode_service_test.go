package impl

import (
	"context"
	"testing"

	domainerrors "atlas/internal/domain/errors"
	domainservice "atlas/internal/domain/service"
	mockSvc "atlas/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeService_GeocodeAddress_Success(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewGeocodeService(mockGeocoder, newDiscardLogger())

	ctx := context.Background()
	query := "3830 Rue Clark, Montreal"

	mockGeocoder.EXPECT().
		Geocode(ctx, query).
		Return(&domainservice.GeocodeResult{
			Latitude:    45.5017,
			Longitude:   -73.5673,
			DisplayName: "3830, Rue Clark, Montreal, QC",
		}, nil)

	output, err := service.GeocodeAddress(ctx, query)

	require.NoError(t, err)
	assert.InDelta(t, 45.5017, output.Latitude, 1e-9)
	assert.InDelta(t, -73.5673, output.Longitude, 1e-9)
	assert.Equal(t, "3830, Rue Clark, Montreal, QC", output.DisplayName)
}

func TestGeocodeService_GeocodeAddress_NoResult(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewGeocodeService(mockGeocoder, newDiscardLogger())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Geocode(ctx, "xyzzy nowhere").
		Return(nil, domainservice.ErrGeocodeNoResult)

	output, err := service.GeocodeAddress(ctx, "xyzzy nowhere")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeNoResult))
}

func TestGeocodeService_GeocodeAddress_ProviderDown(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewGeocodeService(mockGeocoder, newDiscardLogger())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Geocode(ctx, "anywhere").
		Return(nil, errors.New("connection refused"))

	output, err := service.GeocodeAddress(ctx, "anywhere")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeUnavailable))
	assert.False(t, errors.Is(err, domainerrors.ErrGeocodeNoResult))
}

func TestGeocodeService_GeocodeAddress_OutOfRangeResult(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocodingService(t)
	service := NewGeocodeService(mockGeocoder, newDiscardLogger())

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Geocode(ctx, "bad provider data").
		Return(&domainservice.GeocodeResult{Latitude: 120, Longitude: -73.57}, nil)

	output, err := service.GeocodeAddress(ctx, "bad provider data")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrGeocodeUnavailable))
}
