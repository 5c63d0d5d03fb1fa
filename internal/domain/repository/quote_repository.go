package repository

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	"atlas/internal/errors"

	"github.com/google/uuid"
)

// ErrQuoteNotFound is returned when a quote is not found.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteFilter narrows down quote listings. Zero values mean "no restriction".
type QuoteFilter struct {
	Status    entity.QuoteStatus // Only quotes in this status
	PartnerID *uuid.UUID         // Only quotes assigned to this partner
	Limit     int                // Cap on returned rows, 0 means repository default
}

// QuoteRepository defines the interface for quote-related database operations.
type QuoteRepository interface {
	// CreateQuote persists a new quote together with its assignment outcome.
	CreateQuote(ctx context.Context, quote *entity.Quote) error

	// FindQuoteByID retrieves a quote by its unique ID.
	// Returns ErrQuoteNotFound if no such quote exists.
	FindQuoteByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)

	// ListQuotes retrieves quotes matching the filter, newest first.
	ListQuotes(ctx context.Context, filter QuoteFilter) ([]*entity.Quote, error)

	// MarkQuoteNotified stamps the time the partner notification went out.
	MarkQuoteNotified(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error

	// DeleteQuote removes a quote by its ID.
	DeleteQuote(ctx context.Context, id uuid.UUID) error
}
