package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Territory is a partner-owned service area. The geometry is a multipolygon
// in lon/lat order; points falling on its boundary count as inside.
type Territory struct {
	ID        uuid.UUID        `json:"id"`         // Unique identifier (UUID)
	PartnerID uuid.UUID        `json:"partner_id"` // Owning partner
	Name      string           `json:"name"`       // Human-readable label, e.g. "Montreal Island"
	Priority  int              `json:"priority"`   // Higher wins when territories overlap
	Geometry  orb.MultiPolygon `json:"-"`          // Service area, WGS84 lon/lat
	CreatedAt time.Time        `json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time        `json:"updated_at"` // Timestamp of last update
}
