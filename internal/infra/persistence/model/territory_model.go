package model

import (
	"time"

	"github.com/google/uuid"
)

// TerritoryModel is the GORM-specific struct for the 'territories' table.
// Geometry holds the canonical GeoJSON MultiPolygon, lon/lat order, in jsonb.
type TerritoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_territories_on_partner"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Priority  int       `gorm:"not null;default:0;index;check:chk_territories_priority,priority >= 0"`
	Geometry  []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TerritoryModel) TableName() string {
	return "territories"
}
