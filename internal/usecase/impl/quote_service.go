package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "atlas/internal/delivery/context"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/domain/service"
	"atlas/internal/infra/geo"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type quoteService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.QuoteUsecase {
	return &quoteService{
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateQuote persists a new quote and assigns it in one transaction against
// the territory set as it exists right now. Assignment never re-runs when
// territories change later.
func (srv *quoteService) CreateQuote(ctx context.Context, input *usecase.CreateQuoteInput) (*entity.Quote, error) {
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating quote", "latitude", input.Latitude, "longitude", input.Longitude)

	quote := &entity.Quote{
		ID:        uuid.New(),
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Status:    entity.QuoteStatusUnassigned,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	var event *service.QuoteAssignedEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		territories, partners, err := loadMatchSnapshot(ctx, repoFactory)
		if err != nil {
			return err
		}

		point := orb.Point{input.Longitude, input.Latitude}
		outcome := geo.Match(point, territories, activePartnerSet(partners))

		switch {
		case outcome.Winner != nil:
			territoryID := outcome.Winner.ID
			partnerID := outcome.Winner.PartnerID
			quote.Status = entity.QuoteStatusAssigned
			quote.TerritoryID = &territoryID
			quote.PartnerID = &partnerID
			quote.TerritoryName = outcome.Winner.Name
			quote.PartnerName = partnerNames(partners)[partnerID]
		case outcome.InactiveOnly:
			quote.Reason = entity.UnassignedReasonPartnerInactive
		default:
			quote.Reason = entity.UnassignedReasonNoTerritory
		}

		if err := repoFactory.NewQuoteRepository().CreateQuote(ctx, quote); err != nil {
			return errors.Wrap(err, "failed to create quote")
		}

		if outcome.Winner != nil {
			event = assignedEvent(ctx, quote, outcome.Winner, partners)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Quote created",
		"quoteID", quote.ID, "status", quote.Status, "reason", quote.Reason)

	// Best effort after commit: a lost event never takes the quote with it.
	if event != nil {
		if err := srv.publisher.PublishQuoteAssigned(ctx, event); err != nil {
			srv.log(ctx).Error("failed to publish quote assigned event",
				"error", err, "quoteID", event.QuoteID)
		}
	}

	return quote, nil
}

// FindAssignment runs the point matcher against the current territory set
// without persisting anything. A nil assignment means no active partner's
// territory contains the point, which is a normal outcome.
func (srv *quoteService) FindAssignment(ctx context.Context, latitude, longitude float64) (*entity.Assignment, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}

	var assignment *entity.Assignment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		territories, partners, err := loadMatchSnapshot(ctx, repoFactory)
		if err != nil {
			return err
		}

		point := orb.Point{longitude, latitude}
		outcome := geo.Match(point, territories, activePartnerSet(partners))
		if outcome.Winner == nil {
			return nil
		}

		assignment = &entity.Assignment{
			TerritoryID:   outcome.Winner.ID,
			TerritoryName: outcome.Winner.Name,
			PartnerID:     outcome.Winner.PartnerID,
			PartnerName:   partnerNames(partners)[outcome.Winner.PartnerID],
			Priority:      outcome.Winner.Priority,
			Candidates:    outcome.Candidates,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// GetQuote retrieves a single quote by ID.
func (srv *quoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote *entity.Quote

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewQuoteRepository().FindQuoteByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrQuoteNotFound) {
				return errors.Wrap(domainerrors.ErrQuoteNotFound, "get quote")
			}

			return errors.Wrap(err, "failed to find quote")
		}
		quote = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return quote, nil
}

// ListQuotes retrieves quotes matching the filter, newest first.
func (srv *quoteService) ListQuotes(ctx context.Context, input *usecase.ListQuotesInput) ([]*entity.Quote, error) {
	status := entity.QuoteStatus(input.Status)
	if input.Status != "" && !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown quote status " + input.Status)
	}

	filter := repository.QuoteFilter{
		Status:    status,
		PartnerID: input.PartnerID,
		Limit:     input.Limit,
	}

	var quotes []*entity.Quote

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewQuoteRepository().ListQuotes(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list quotes")
		}
		quotes = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return quotes, nil
}

// DeleteQuote removes a quote.
func (srv *quoteService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting quote", "quoteID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewQuoteRepository().DeleteQuote(ctx, id); err != nil {
			if errors.Is(err, repository.ErrQuoteNotFound) {
				return errors.Wrap(domainerrors.ErrQuoteNotFound, "delete quote")
			}

			return errors.Wrap(err, "failed to delete quote")
		}

		return nil
	})

	return err
}

// loadMatchSnapshot loads territories and partners inside one transaction so
// the matcher works on a consistent view.
func loadMatchSnapshot(ctx context.Context, repoFactory repository.RepositoryFactory) ([]*entity.Territory, []*entity.Partner, error) {
	territories, err := repoFactory.NewTerritoryRepository().ListTerritories(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load territory snapshot")
	}

	partners, err := repoFactory.NewPartnerRepository().ListPartners(ctx, false)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load partners")
	}

	return territories, partners, nil
}

// activePartnerSet indexes partner eligibility by ID.
func activePartnerSet(partners []*entity.Partner) map[uuid.UUID]bool {
	active := make(map[uuid.UUID]bool, len(partners))
	for _, partner := range partners {
		active[partner.ID] = partner.Active
	}

	return active
}

// assignedEvent builds the notification event for a freshly assigned quote.
func assignedEvent(ctx context.Context, quote *entity.Quote, winner *entity.Territory, partners []*entity.Partner) *service.QuoteAssignedEvent {
	var contactEmail string
	for _, partner := range partners {
		if partner.ID == winner.PartnerID {
			contactEmail = partner.ContactEmail

			break
		}
	}

	return &service.QuoteAssignedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		QuoteID:       quote.ID.String(),
		PartnerID:     winner.PartnerID.String(),
		TerritoryID:   winner.ID.String(),
		TerritoryName: winner.Name,
		ContactEmail:  contactEmail,
		Address:       quote.Address,
		Latitude:      quote.Latitude,
		Longitude:     quote.Longitude,
	}
}

// validateCoordinates rejects out-of-range WGS84 points before any matcher
// or persistence call runs.
func validateCoordinates(latitude, longitude float64) error {
	if !coordinatesInRange(latitude, longitude) {
		return errors.Wrapf(domainerrors.ErrInvalidCoordinates,
			"latitude=%v longitude=%v", latitude, longitude)
	}

	return nil
}

// coordinatesInRange reports whether the point is a finite WGS84 coordinate.
func coordinatesInRange(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}

	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
