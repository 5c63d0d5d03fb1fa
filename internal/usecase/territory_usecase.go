package usecase

import (
	"context"
	"encoding/json"
	"time"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateTerritoryInput defines the data required to create a territory.
// Geometry is a GeoJSON document: Polygon, MultiPolygon, Feature or
// FeatureCollection, coordinates in longitude/latitude order.
type CreateTerritoryInput struct {
	PartnerID uuid.UUID       `json:"partner_id"`
	Name      string          `json:"name"`
	Priority  int             `json:"priority"`
	Geometry  json.RawMessage `json:"geometry"`
}

// UpdateTerritoryInput defines the data for updating an existing territory.
// Nil fields are left unchanged.
type UpdateTerritoryInput struct {
	PartnerID *uuid.UUID      `json:"partner_id,omitempty"`
	Name      *string         `json:"name,omitempty"`
	Priority  *int            `json:"priority,omitempty"`
	Geometry  json.RawMessage `json:"geometry,omitempty"`
}

// --- Output DTOs ---

// TerritoryOutput is a territory with its geometry rendered as GeoJSON.
type TerritoryOutput struct {
	ID           uuid.UUID       `json:"id"`
	PartnerID    uuid.UUID       `json:"partner_id"`
	PartnerName  string          `json:"partner_name,omitempty"`
	Name         string          `json:"name"`
	Priority     int             `json:"priority"`
	Geometry     json.RawMessage `json:"geometry"`
	DroppedRings int             `json:"dropped_rings,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OverlapAuditOutput is the global overlap report. Pairs is capped for
// display; Total always counts the complete underlying set.
type OverlapAuditOutput struct {
	Total int                  `json:"total"`
	Pairs []entity.OverlapPair `json:"pairs"`
}

// ResolveOverlapOutput reports the priority change made by the resolver.
type ResolveOverlapOutput struct {
	TerritoryID uuid.UUID `json:"territory_id"`
	OldPriority int       `json:"old_priority"`
	NewPriority int       `json:"new_priority"`
}

// TerritoryUsecase defines the interface for territory management, overlap
// reporting and priority resolution use cases.
type TerritoryUsecase interface {
	CreateTerritory(ctx context.Context, input *CreateTerritoryInput) (*TerritoryOutput, error)
	GetTerritory(ctx context.Context, id uuid.UUID) (*TerritoryOutput, error)
	ListTerritories(ctx context.Context) ([]*TerritoryOutput, error)
	ListTerritoriesByPartner(ctx context.Context, partnerID uuid.UUID) ([]*TerritoryOutput, error)
	UpdateTerritory(ctx context.Context, id uuid.UUID, input *UpdateTerritoryInput) (*TerritoryOutput, error)
	DeleteTerritory(ctx context.Context, id uuid.UUID) error

	// OverlapsFor reports every territory overlapping the given one.
	// The focal territory is always the first side of each pair.
	OverlapsFor(ctx context.Context, territoryID uuid.UUID) ([]entity.OverlapPair, error)

	// AllOverlaps reports every overlapping pair, largest shared area first.
	// limit < 0 applies the configured display cap, limit == 0 disables it.
	AllOverlaps(ctx context.Context, limit int) (*OverlapAuditOutput, error)

	// ResolveOverlap raises the territory's priority above every territory
	// it currently overlaps. Callers must re-query territories and overlaps
	// afterwards to observe consistent state.
	ResolveOverlap(ctx context.Context, territoryID uuid.UUID) (*ResolveOverlapOutput, error)
}
