// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type partnerService struct {
	partnerRepo repository.PartnerRepository
	logger      *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(partnerRepo repository.PartnerRepository, logger *slog.Logger) usecase.PartnerUsecase {
	return &partnerService{
		partnerRepo: partnerRepo,
		logger:      logger,
	}
}

// CreatePartner registers a new partner.
func (srv *partnerService) CreatePartner(ctx context.Context, input *usecase.CreatePartnerInput) (*entity.Partner, error) {
	srv.logger.Info("Creating partner", "name", input.Name)

	partner := &entity.Partner{
		ID:           uuid.New(),
		Name:         input.Name,
		Category:     input.Category,
		Languages:    input.Languages,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Active:       input.Active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := srv.partnerRepo.CreatePartner(ctx, partner); err != nil {
		return nil, errors.Wrap(err, "failed to create partner")
	}

	return partner, nil
}

// GetPartner retrieves a single partner by ID.
func (srv *partnerService) GetPartner(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	partner, err := srv.partnerRepo.FindPartnerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPartnerNotFound, "get partner")
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	return partner, nil
}

// ListPartners retrieves all partners, optionally only the active ones.
func (srv *partnerService) ListPartners(ctx context.Context, activeOnly bool) ([]*entity.Partner, error) {
	partners, err := srv.partnerRepo.ListPartners(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	return partners, nil
}

// UpdatePartner updates an existing partner.
func (srv *partnerService) UpdatePartner(ctx context.Context, id uuid.UUID, input *usecase.UpdatePartnerInput) (*entity.Partner, error) {
	srv.logger.Info("Updating partner", "partnerID", id)

	partner, err := srv.partnerRepo.FindPartnerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPartnerNotFound, "update partner")
		}

		return nil, errors.Wrap(err, "failed to find partner")
	}

	applyPartnerUpdates(partner, input)

	if err := srv.partnerRepo.UpdatePartner(ctx, partner); err != nil {
		return nil, errors.Wrap(err, "failed to update partner")
	}

	return partner, nil
}

// applyPartnerUpdates applies the update input to a partner.
func applyPartnerUpdates(partner *entity.Partner, input *usecase.UpdatePartnerInput) {
	if input.Name != nil {
		partner.Name = *input.Name
	}
	if input.Category != nil {
		partner.Category = *input.Category
	}
	if input.Languages != nil {
		partner.Languages = input.Languages
	}
	if input.ContactName != nil {
		partner.ContactName = *input.ContactName
	}
	if input.ContactEmail != nil {
		partner.ContactEmail = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		partner.ContactPhone = *input.ContactPhone
	}
	if input.Active != nil {
		partner.Active = *input.Active
	}
	partner.UpdatedAt = time.Now()
}

// DeletePartner removes a partner. Partners that still own territories
// cannot be deleted.
func (srv *partnerService) DeletePartner(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting partner", "partnerID", id)

	if err := srv.partnerRepo.DeletePartner(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return errors.Wrap(domainerrors.ErrPartnerNotFound, "delete partner")
		}

		return errors.Wrap(err, "failed to delete partner")
	}

	return nil
}
