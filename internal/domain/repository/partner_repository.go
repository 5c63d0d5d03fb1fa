// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for partner persistence.
var (
	// ErrPartnerNotFound is returned when a partner is not found.
	ErrPartnerNotFound = errors.New("partner not found")
	// ErrPartnerNameTaken is returned when another partner already uses the name.
	ErrPartnerNameTaken = errors.New("partner name already taken")
)

// PartnerRepository defines the interface for partner-related database operations.
type PartnerRepository interface {
	// CreatePartner persists a new partner.
	CreatePartner(ctx context.Context, partner *entity.Partner) error

	// FindPartnerByID retrieves a partner by its unique ID.
	// Returns ErrPartnerNotFound if no such partner exists.
	FindPartnerByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)

	// FindPartnersByIDs retrieves the partners whose IDs appear in the given set.
	// Missing IDs are silently skipped.
	FindPartnersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Partner, error)

	// ListPartners retrieves all partners, optionally restricted to active ones.
	ListPartners(ctx context.Context, activeOnly bool) ([]*entity.Partner, error)

	// UpdatePartner updates an existing partner record.
	UpdatePartner(ctx context.Context, partner *entity.Partner) error

	// DeletePartner removes a partner by its ID.
	DeletePartner(ctx context.Context, id uuid.UUID) error
}
