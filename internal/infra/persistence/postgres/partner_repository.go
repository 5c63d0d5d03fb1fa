// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partnerRepository implements the domain's PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

// CreatePartner persists a new partner.
func (repo *partnerRepository) CreatePartner(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPartnerAlreadyExists.WrapMessage("partner name already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required partner information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create partner")
	}

	// Update the entity with generated values
	partner.ID = partnerM.ID
	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// FindPartnerByID retrieves a partner by its unique ID.
func (repo *partnerRepository) FindPartnerByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	var partnerM model.PartnerModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&partnerM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by ID")
	}

	return toPartnerDomain(&partnerM), nil
}

// FindPartnersByIDs retrieves the partners whose IDs appear in the given set.
func (repo *partnerRepository) FindPartnersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Partner, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var partnerModels []*model.PartnerModel
	err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&partnerModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find partners by IDs")
	}

	partners := make([]*entity.Partner, 0, len(partnerModels))
	for _, partnerM := range partnerModels {
		partners = append(partners, toPartnerDomain(partnerM))
	}

	return partners, nil
}

// ListPartners retrieves all partners, optionally restricted to active ones.
func (repo *partnerRepository) ListPartners(ctx context.Context, activeOnly bool) ([]*entity.Partner, error) {
	query := repo.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var partnerModels []*model.PartnerModel
	if err := query.Find(&partnerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	partners := make([]*entity.Partner, 0, len(partnerModels))
	for _, partnerM := range partnerModels {
		partners = append(partners, toPartnerDomain(partnerM))
	}

	return partners, nil
}

// UpdatePartner updates an existing partner record.
func (repo *partnerRepository) UpdatePartner(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)

	result := repo.db.WithContext(ctx).
		Model(&model.PartnerModel{}).
		Where("id = ?", partnerM.ID).
		Updates(map[string]any{
			"name":          partnerM.Name,
			"category":      partnerM.Category,
			"languages":     partnerM.Languages,
			"contact_name":  partnerM.ContactName,
			"contact_email": partnerM.ContactEmail,
			"contact_phone": partnerM.ContactPhone,
			"active":        partnerM.Active,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPartnerAlreadyExists.WrapMessage("partner name already in use")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update partner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

// DeletePartner removes a partner by its ID.
func (repo *partnerRepository) DeletePartner(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PartnerModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrPartnerHasTerritories.WrapMessage("territories still reference this partner")
		}

		return errors.Wrap(result.Error, "failed to delete partner")
	}

	// If no rows were affected, it means the partner was not found.
	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPartnerDomain converts a GORM PartnerModel to a domain Partner entity.
func toPartnerDomain(data *model.PartnerModel) *entity.Partner {
	if data == nil {
		return nil
	}

	var languages []string
	if len(data.Languages) > 0 {
		// Stored jsonb is produced by fromPartnerDomain; a decode failure
		// simply leaves the list empty.
		_ = json.Unmarshal(data.Languages, &languages)
	}

	return &entity.Partner{
		ID:           data.ID,
		Name:         data.Name,
		Category:     data.Category,
		Languages:    languages,
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromPartnerDomain converts a domain Partner entity to a GORM PartnerModel.
func fromPartnerDomain(data *entity.Partner) *model.PartnerModel {
	if data == nil {
		return nil
	}

	languages := data.Languages
	if languages == nil {
		languages = []string{}
	}
	languagesJSON, _ := json.Marshal(languages)

	return &model.PartnerModel{
		ID:           data.ID,
		Name:         data.Name,
		Category:     data.Category,
		Languages:    languagesJSON,
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
