package postgres

import (
	"context"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/geo"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// territoryRepository implements the domain's TerritoryRepository interface.
type territoryRepository struct {
	db *gorm.DB
}

// NewTerritoryRepository is the constructor for territoryRepository.
func NewTerritoryRepository(db *gorm.DB) repository.TerritoryRepository {
	return &territoryRepository{db: db}
}

// CreateTerritory persists a new territory.
func (repo *territoryRepository) CreateTerritory(ctx context.Context, territory *entity.Territory) error {
	territoryM, err := fromTerritoryDomain(territory)
	if err != nil {
		return domainerrors.ErrInvalidGeometry.WrapMessage("encode territory geometry")
	}

	if err := repo.db.WithContext(ctx).Create(territoryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPartnerNotFound.WrapMessage("invalid partner reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidPriority.WrapMessage("priority rejected by database constraint")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required territory information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create territory")
	}

	// Update the entity with generated values
	territory.ID = territoryM.ID
	territory.CreatedAt = territoryM.CreatedAt
	territory.UpdatedAt = territoryM.UpdatedAt

	return nil
}

// FindTerritoryByID retrieves a territory by its unique ID.
func (repo *territoryRepository) FindTerritoryByID(ctx context.Context, id uuid.UUID) (*entity.Territory, error) {
	var territoryM model.TerritoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&territoryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTerritoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find territory by ID")
	}

	return toTerritoryDomain(&territoryM)
}

// ListTerritories retrieves every territory ordered by priority descending.
func (repo *territoryRepository) ListTerritories(ctx context.Context) ([]*entity.Territory, error) {
	var territoryModels []*model.TerritoryModel
	err := repo.db.WithContext(ctx).
		Order("priority DESC, created_at ASC").
		Find(&territoryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list territories")
	}

	return toTerritoryDomainList(territoryModels)
}

// ListTerritoriesByPartner retrieves all territories owned by a partner.
func (repo *territoryRepository) ListTerritoriesByPartner(ctx context.Context, partnerID uuid.UUID) ([]*entity.Territory, error) {
	var territoryModels []*model.TerritoryModel
	err := repo.db.WithContext(ctx).
		Where("partner_id = ?", partnerID).
		Order("priority DESC, created_at ASC").
		Find(&territoryModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list territories by partner")
	}

	return toTerritoryDomainList(territoryModels)
}

// MaxPriority returns the highest priority over all territories, 0 when none exist.
func (repo *territoryRepository) MaxPriority(ctx context.Context) (int, error) {
	var maxPriority int
	err := repo.db.WithContext(ctx).
		Model(&model.TerritoryModel{}).
		Select("COALESCE(MAX(priority), 0)").
		Scan(&maxPriority).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to query max territory priority")
	}

	return maxPriority, nil
}

// UpdateTerritory updates an existing territory record.
func (repo *territoryRepository) UpdateTerritory(ctx context.Context, territory *entity.Territory) error {
	territoryM, err := fromTerritoryDomain(territory)
	if err != nil {
		return domainerrors.ErrInvalidGeometry.WrapMessage("encode territory geometry")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TerritoryModel{}).
		Where("id = ?", territoryM.ID).
		Updates(map[string]any{
			"partner_id": territoryM.PartnerID,
			"name":       territoryM.Name,
			"priority":   territoryM.Priority,
			"geometry":   territoryM.Geometry,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrPartnerNotFound.WrapMessage("invalid partner reference")
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidPriority.WrapMessage("priority rejected by database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update territory")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTerritoryNotFound
	}

	return nil
}

// UpdateTerritoryPriority sets only the priority of a territory.
func (repo *territoryRepository) UpdateTerritoryPriority(ctx context.Context, id uuid.UUID, priority int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TerritoryModel{}).
		Where("id = ?", id).
		Update("priority", priority)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidPriority.WrapMessage("priority rejected by database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update territory priority")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTerritoryNotFound
	}

	return nil
}

// DeleteTerritory removes a territory by its ID.
func (repo *territoryRepository) DeleteTerritory(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TerritoryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete territory")
	}

	// If no rows were affected, it means the territory was not found.
	if result.RowsAffected == 0 {
		return repository.ErrTerritoryNotFound
	}

	return nil
}

// CountTerritoriesByPartner returns how many territories a partner owns.
func (repo *territoryRepository) CountTerritoriesByPartner(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.TerritoryModel{}).
		Where("partner_id = ?", partnerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count territories by partner")
	}

	return count, nil
}

// --- Mapper Functions ---

// toTerritoryDomain converts a GORM TerritoryModel to a domain Territory entity.
// Stored geometry passes through the same sanitizer as incoming geometry, so
// rows with partially invalid rings still load.
func toTerritoryDomain(data *model.TerritoryModel) (*entity.Territory, error) {
	if data == nil {
		return nil, nil
	}

	geometry, _, err := geo.DecodeGeoJSON(data.Geometry)
	if err != nil {
		return nil, errors.Wrapf(err, "decode stored geometry of territory %s", data.ID)
	}

	return &entity.Territory{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		Name:      data.Name,
		Priority:  data.Priority,
		Geometry:  geometry,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func toTerritoryDomainList(models []*model.TerritoryModel) ([]*entity.Territory, error) {
	territories := make([]*entity.Territory, 0, len(models))
	for _, territoryM := range models {
		territory, err := toTerritoryDomain(territoryM)
		if err != nil {
			return nil, err
		}
		territories = append(territories, territory)
	}

	return territories, nil
}

// fromTerritoryDomain converts a domain Territory entity to a GORM TerritoryModel.
func fromTerritoryDomain(data *entity.Territory) (*model.TerritoryModel, error) {
	if data == nil {
		return nil, nil
	}

	geometry, err := geo.EncodeGeoJSON(data.Geometry)
	if err != nil {
		return nil, err
	}

	return &model.TerritoryModel{
		ID:        data.ID,
		PartnerID: data.PartnerID,
		Name:      data.Name,
		Priority:  data.Priority,
		Geometry:  geometry,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
