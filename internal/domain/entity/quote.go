package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus tells whether a quote found a territory when it was created.
type QuoteStatus string

const (
	// QuoteStatusAssigned means a territory claimed the quote.
	QuoteStatusAssigned QuoteStatus = "assigned"
	// QuoteStatusUnassigned means no active partner's territory contains the point.
	QuoteStatusUnassigned QuoteStatus = "unassigned"
)

// String returns the string representation of the QuoteStatus.
func (s QuoteStatus) String() string {
	return string(s)
}

// IsValid checks if the QuoteStatus is a valid value.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusAssigned, QuoteStatusUnassigned:
		return true
	default:
		return false
	}
}

// Reasons recorded on unassigned quotes.
const (
	// UnassignedReasonNoTerritory means no territory contains the point.
	UnassignedReasonNoTerritory = "no_territory_matched"
	// UnassignedReasonPartnerInactive means the best matching territory
	// belongs to a deactivated partner.
	UnassignedReasonPartnerInactive = "partner_inactive"
)

// Quote is a customer request pinned to a location. Assignment happens once,
// at creation time, against the territory set as it exists in that moment.
type Quote struct {
	ID          uuid.UUID   `json:"id"`                     // Unique identifier (UUID)
	Address     string      `json:"address"`                // Free-form customer address
	Latitude    float64     `json:"latitude"`               // WGS84 latitude, [-90, 90]
	Longitude   float64     `json:"longitude"`              // WGS84 longitude, [-180, 180]
	Status      QuoteStatus `json:"status"`                 // assigned or unassigned
	TerritoryID *uuid.UUID  `json:"territory_id,omitempty"` // Winning territory, nil when unassigned
	PartnerID   *uuid.UUID  `json:"partner_id,omitempty"`   // Owner of the winning territory
	Reason      string      `json:"reason,omitempty"`       // Why the quote stayed unassigned

	// Display names resolved at assignment time for the create response.
	// Not persisted; lookups return quotes without them.
	TerritoryName string `json:"territory_name,omitempty"`
	PartnerName   string `json:"partner_name,omitempty"`
	NotifiedAt  *time.Time  `json:"notified_at,omitempty"`  // Set once the partner notification went out
	CreatedAt   time.Time   `json:"created_at"`             // Timestamp of creation
	UpdatedAt   time.Time   `json:"updated_at"`             // Timestamp of last update
}

// Assigned reports whether the quote was claimed by a territory.
func (q *Quote) Assigned() bool {
	return q.Status == QuoteStatusAssigned
}
