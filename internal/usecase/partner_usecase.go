// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreatePartnerInput defines the data required to register a new partner.
type CreatePartnerInput struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Languages    []string `json:"languages"`
	ContactName  string   `json:"contact_name"`
	ContactEmail string   `json:"contact_email"`
	ContactPhone string   `json:"contact_phone"`
	Active       bool     `json:"active"`
}

// UpdatePartnerInput defines the data for updating an existing partner.
// Nil fields are left unchanged.
type UpdatePartnerInput struct {
	Name         *string  `json:"name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	ContactName  *string  `json:"contact_name,omitempty"`
	ContactEmail *string  `json:"contact_email,omitempty"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// PartnerUsecase defines the interface for partner management use cases.
type PartnerUsecase interface {
	CreatePartner(ctx context.Context, input *CreatePartnerInput) (*entity.Partner, error)
	GetPartner(ctx context.Context, id uuid.UUID) (*entity.Partner, error)
	ListPartners(ctx context.Context, activeOnly bool) ([]*entity.Partner, error)
	UpdatePartner(ctx context.Context, id uuid.UUID, input *UpdatePartnerInput) (*entity.Partner, error)
	DeletePartner(ctx context.Context, id uuid.UUID) error
}
