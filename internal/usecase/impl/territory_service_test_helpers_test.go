package impl

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"atlas/config"
	"atlas/internal/domain/entity"
	"atlas/internal/infra/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(overlapDisplayCap int) *config.Config {
	return &config.Config{
		Audit: &config.AuditConfig{
			OverlapDisplayCap: overlapDisplayCap,
		},
	}
}

// square builds an axis-aligned one-polygon multipolygon, closed ring,
// coordinates in lng/lat order.
func square(minLng, minLat, maxLng, maxLat float64) orb.MultiPolygon {
	return orb.MultiPolygon{
		{
			{
				{minLng, minLat},
				{maxLng, minLat},
				{maxLng, maxLat},
				{minLng, maxLat},
				{minLng, minLat},
			},
		},
	}
}

func newTestTerritory(partnerID uuid.UUID, name string, priority int, geometry orb.MultiPolygon) *entity.Territory {
	return &entity.Territory{
		ID:        uuid.New(),
		PartnerID: partnerID,
		Name:      name,
		Priority:  priority,
		Geometry:  geometry,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func newTestPartner(name string, active bool) *entity.Partner {
	return &entity.Partner{
		ID:           uuid.New(),
		Name:         name,
		Category:     "moving",
		Languages:    []string{"en", "fr"},
		ContactEmail: name + "@example.com",
		Active:       active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func mustGeoJSON(t *testing.T, geometry orb.MultiPolygon) json.RawMessage {
	t.Helper()

	raw, err := geo.EncodeGeoJSON(geometry)
	require.NoError(t, err)

	return raw
}
