package repository

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// ErrTerritoryNotFound is returned when a territory is not found.
var ErrTerritoryNotFound = errors.New("territory not found")

// TerritoryRepository defines the interface for territory-related database operations.
// Matching and overlap checks load the full set; the catalogue is small enough
// that point lookups happen in memory rather than in the database.
type TerritoryRepository interface {
	// CreateTerritory persists a new territory.
	CreateTerritory(ctx context.Context, territory *entity.Territory) error

	// FindTerritoryByID retrieves a territory by its unique ID.
	// Returns ErrTerritoryNotFound if no such territory exists.
	FindTerritoryByID(ctx context.Context, id uuid.UUID) (*entity.Territory, error)

	// ListTerritories retrieves every territory ordered by priority descending.
	ListTerritories(ctx context.Context) ([]*entity.Territory, error)

	// ListTerritoriesByPartner retrieves all territories owned by a partner.
	ListTerritoriesByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Territory, error)

	// MaxPriority returns the highest priority over all territories, 0 when none exist.
	MaxPriority(ctx context.Context) (int, error)

	// UpdateTerritory updates an existing territory record.
	UpdateTerritory(ctx context.Context, territory *entity.Territory) error

	// UpdateTerritoryPriority sets only the priority of a territory.
	UpdateTerritoryPriority(ctx context.Context, id uuid.UUID, priority int) error

	// DeleteTerritory removes a territory by its ID.
	DeleteTerritory(ctx context.Context, id uuid.UUID) error

	// CountTerritoriesByPartner returns how many territories a partner owns.
	CountTerritoriesByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error)
}
