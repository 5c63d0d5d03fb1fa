package model

import (
	"time"

	"github.com/google/uuid"
)

// QuoteModel is the GORM-specific struct for the 'quotes' table.
// Territory and partner references are plain columns, not foreign keys:
// a quote keeps its historical assignment even after the territory is
// edited or deleted.
type QuoteModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Address     string     `gorm:"type:text;not null;default:''"`
	Latitude    float64    `gorm:"type:decimal(10,8);not null"`
	Longitude   float64    `gorm:"type:decimal(11,8);not null"`
	Status      string     `gorm:"type:varchar(20);not null;index"`
	TerritoryID *uuid.UUID `gorm:"type:uuid"`
	PartnerID   *uuid.UUID `gorm:"type:uuid;index:idx_quotes_on_partner"`
	Reason      string     `gorm:"type:varchar(100);not null;default:''"`
	NotifiedAt  *time.Time
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuoteModel) TableName() string {
	return "quotes"
}
