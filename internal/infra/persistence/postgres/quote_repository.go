package postgres

import (
	"context"
	"time"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// defaultQuoteListLimit caps unbounded quote listings.
const defaultQuoteListLimit = 100

// quoteRepository implements the domain's QuoteRepository interface.
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

// CreateQuote persists a new quote together with its assignment outcome.
func (repo *quoteRepository) CreateQuote(ctx context.Context, quote *entity.Quote) error {
	quoteM := fromQuoteDomain(quote)

	if err := repo.db.WithContext(ctx).Create(quoteM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required quote information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quote")
	}

	// Update the entity with generated values
	quote.ID = quoteM.ID
	quote.CreatedAt = quoteM.CreatedAt
	quote.UpdatedAt = quoteM.UpdatedAt

	return nil
}

// FindQuoteByID retrieves a quote by its unique ID.
func (repo *quoteRepository) FindQuoteByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quoteM model.QuoteModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&quoteM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by ID")
	}

	return toQuoteDomain(&quoteM), nil
}

// ListQuotes retrieves quotes matching the filter, newest first.
func (repo *quoteRepository) ListQuotes(ctx context.Context, filter repository.QuoteFilter) ([]*entity.Quote, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.PartnerID != nil {
		query = query.Where("partner_id = ?", *filter.PartnerID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultQuoteListLimit
	}
	query = query.Limit(limit)

	var quoteModels []*model.QuoteModel
	if err := query.Find(&quoteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quotes")
	}

	quotes := make([]*entity.Quote, 0, len(quoteModels))
	for _, quoteM := range quoteModels {
		quotes = append(quotes, toQuoteDomain(quoteM))
	}

	return quotes, nil
}

// MarkQuoteNotified stamps the time the partner notification went out.
func (repo *quoteRepository) MarkQuoteNotified(ctx context.Context, id uuid.UUID, notifiedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("id = ?", id).
		Update("notified_at", notifiedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark quote notified")
	}

	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// DeleteQuote removes a quote by its ID.
func (repo *quoteRepository) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QuoteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete quote")
	}

	// If no rows were affected, it means the quote was not found.
	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toQuoteDomain converts a GORM QuoteModel to a domain Quote entity.
func toQuoteDomain(data *model.QuoteModel) *entity.Quote {
	if data == nil {
		return nil
	}

	return &entity.Quote{
		ID:          data.ID,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Status:      entity.QuoteStatus(data.Status),
		TerritoryID: data.TerritoryID,
		PartnerID:   data.PartnerID,
		Reason:      data.Reason,
		NotifiedAt:  data.NotifiedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromQuoteDomain converts a domain Quote entity to a GORM QuoteModel.
func fromQuoteDomain(data *entity.Quote) *model.QuoteModel {
	if data == nil {
		return nil
	}

	return &model.QuoteModel{
		ID:          data.ID,
		Address:     data.Address,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		Status:      data.Status.String(),
		TerritoryID: data.TerritoryID,
		PartnerID:   data.PartnerID,
		Reason:      data.Reason,
		NotifiedAt:  data.NotifiedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
