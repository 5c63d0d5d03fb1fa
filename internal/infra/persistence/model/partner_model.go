package model

import (
	"time"

	"github.com/google/uuid"
)

// PartnerModel is the GORM-specific struct for the 'partners' table.
// Languages is stored as a JSON array in jsonb.
type PartnerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_partners_on_name"`
	Category     string    `gorm:"type:varchar(100);not null;default:''"`
	Languages    []byte    `gorm:"type:jsonb;not null;default:'[]'"`
	ContactName  string    `gorm:"type:varchar(255);not null;default:''"`
	ContactEmail string    `gorm:"type:varchar(255);not null;default:''"`
	ContactPhone string    `gorm:"type:varchar(50);not null;default:''"`
	Active       bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Territories []*TerritoryModel `gorm:"foreignKey:PartnerID"`
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "partners"
}
