package usecase

import (
	"context"

	"atlas/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateQuoteInput defines the data required to create and assign a quote.
// Address is optional free text kept for display; the point is what gets
// matched.
type CreateQuoteInput struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ListQuotesInput narrows down a quote listing. Zero values mean no filter.
type ListQuotesInput struct {
	Status    string     `json:"status"`
	PartnerID *uuid.UUID `json:"partner_id,omitempty"`
	Limit     int        `json:"limit"`
}

// QuoteUsecase defines the interface for the quote assignment workflow.
type QuoteUsecase interface {
	// CreateQuote persists a new quote and assigns it against the territory
	// set in one transaction. The returned quote carries either the winning
	// territory and partner or an unassigned reason. Assignment happens
	// exactly once; later territory edits never re-run it.
	CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error)

	// FindAssignment runs the point matcher without persisting anything.
	// Returns nil when no active partner's territory contains the point.
	FindAssignment(ctx context.Context, latitude, longitude float64) (*entity.Assignment, error)

	GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	ListQuotes(ctx context.Context, input *ListQuotesInput) ([]*entity.Quote, error)
	DeleteQuote(ctx context.Context, id uuid.UUID) error
}
