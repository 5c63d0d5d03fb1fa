package entity

import "github.com/google/uuid"

// Assignment is the result of matching a point against the territory set.
// It is computed on the fly and never persisted on its own.
type Assignment struct {
	TerritoryID   uuid.UUID `json:"territory_id"`   // Winning territory
	TerritoryName string    `json:"territory_name"` // Label of the winning territory
	PartnerID     uuid.UUID `json:"partner_id"`     // Owner of the winning territory
	PartnerName   string    `json:"partner_name"`   // Display name of the owner
	Priority      int       `json:"priority"`       // Priority the territory won with
	Candidates    int       `json:"candidates"`     // Eligible territories containing the point
}

// OverlapSide identifies one territory of an overlapping pair.
type OverlapSide struct {
	TerritoryID   uuid.UUID `json:"territory_id"`   // Territory identity
	TerritoryName string    `json:"territory_name"` // Label of the territory
	PartnerID     uuid.UUID `json:"partner_id"`     // Owning partner
	PartnerName   string    `json:"partner_name"`   // Display name of the owner
	Priority      int       `json:"priority"`       // Current priority of the territory
}

// OverlapPair describes two territories whose geometries share interior area.
// In a global audit the pair is ordered by territory ID string; in a scoped
// lookup First is the focal territory and Second the other one.
type OverlapPair struct {
	First        OverlapSide `json:"first"`         // One side of the pair
	Second       OverlapSide `json:"second"`        // The other side
	SamePriority bool        `json:"same_priority"` // True when both carry the same priority
	OverlapArea  float64     `json:"overlap_area"`  // Shared area in squared degrees
}
