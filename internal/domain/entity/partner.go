package entity

import (
	"time"

	"github.com/google/uuid"
)

// Partner represents a business that owns territories and receives quotes.
type Partner struct {
	ID           uuid.UUID `json:"id"`            // Unique identifier (UUID)
	Name         string    `json:"name"`          // Display name of the partner
	Category     string    `json:"category"`      // Line of business, e.g. "moving", "storage"
	Languages    []string  `json:"languages"`     // Languages the partner serves, ISO 639-1 codes
	ContactName  string    `json:"contact_name"`  // Optional name of the contact person
	ContactEmail string    `json:"contact_email"` // Address that receives quote notifications
	ContactPhone string    `json:"contact_phone"` // Optional phone number
	Active       bool      `json:"active"`        // Inactive partners keep territories but get no quotes
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of creation
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of last update
}
