package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"atlas/internal/delivery/http/validator"
	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	mockUC "atlas/internal/mocks/usecase"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// newQuoteTestContext builds an Echo context with the request validator wired,
// the same way the HTTP server configures it.
func newQuoteTestContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	quoteID := uuid.New()
	territoryID := uuid.New()
	partnerID := uuid.New()

	mockQuoteUC.EXPECT().
		CreateQuote(mock.Anything, mock.AnythingOfType("*usecase.CreateQuoteInput")).
		Run(func(ctx context.Context, input *usecase.CreateQuoteInput) {
			assert.Equal(t, "3830 Rue Clark, Montreal", input.Address)
			assert.InDelta(t, 45.5017, input.Latitude, 1e-9)
			assert.InDelta(t, -73.5673, input.Longitude, 1e-9)
		}).
		Return(&entity.Quote{
			ID:          quoteID,
			Address:     "3830 Rue Clark, Montreal",
			Latitude:    45.5017,
			Longitude:   -73.5673,
			Status:      entity.QuoteStatusAssigned,
			TerritoryID: &territoryID,
			PartnerID:   &partnerID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}, nil)

	body := `{"address":"3830 Rue Clark, Montreal","latitude":45.5017,"longitude":-73.5673}`
	c, rec := newQuoteTestContext(http.MethodPost, "/quotes", body)

	err := handler.CreateQuote(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, quoteID.String())
	assert.Contains(t, responseBody, `"status":"assigned"`)
	assert.Contains(t, responseBody, "Quote created successfully")
}

func TestQuoteHandler_CreateQuote_MissingCoordinates(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	// Latitude and longitude are absent, so validation must reject the body
	// before the usecase is ever called.
	body := `{"address":"3830 Rue Clark, Montreal"}`
	c, rec := newQuoteTestContext(http.MethodPost, "/quotes", body)

	err := handler.CreateQuote(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestQuoteHandler_CreateQuote_LatitudeOutOfRange(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	body := `{"address":"nowhere","latitude":95.0,"longitude":10.0}`
	c, rec := newQuoteTestContext(http.MethodPost, "/quotes", body)

	err := handler.CreateQuote(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestQuoteHandler_CreateQuote_ZeroCoordinatesAreValid(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	// Null Island is a legal point. The pointer fields keep an explicit zero
	// apart from a missing coordinate.
	mockQuoteUC.EXPECT().
		CreateQuote(mock.Anything, mock.AnythingOfType("*usecase.CreateQuoteInput")).
		Return(&entity.Quote{
			ID:     uuid.New(),
			Status: entity.QuoteStatusUnassigned,
			Reason: entity.UnassignedReasonNoTerritory,
		}, nil)

	body := `{"latitude":0,"longitude":0}`
	c, rec := newQuoteTestContext(http.MethodPost, "/quotes", body)

	err := handler.CreateQuote(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), entity.UnassignedReasonNoTerritory)
}

func TestQuoteHandler_FindAssignment(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	territoryID := uuid.New()
	partnerID := uuid.New()

	mockQuoteUC.EXPECT().
		FindAssignment(mock.Anything, 45.5017, -73.5673).
		Return(&entity.Assignment{
			TerritoryID:   territoryID,
			TerritoryName: "Plateau Mont-Royal",
			PartnerID:     partnerID,
			PartnerName:   "North Crew",
			Priority:      7,
			Candidates:    2,
		}, nil)

	c, rec := newQuoteTestContext(http.MethodGet, "/assignments?lat=45.5017&lng=-73.5673", "")

	err := handler.FindAssignment(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"matched":true`)
	assert.Contains(t, responseBody, "Plateau Mont-Royal")
	assert.Contains(t, responseBody, territoryID.String())
}

func TestQuoteHandler_FindAssignment_NoMatch(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	mockQuoteUC.EXPECT().
		FindAssignment(mock.Anything, 10.0, 10.0).
		Return(nil, nil)

	c, rec := newQuoteTestContext(http.MethodGet, "/assignments?lat=10&lng=10", "")

	err := handler.FindAssignment(c)
	assert.NoError(t, err)

	// An unmatched point is a normal answer, not an error.
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"matched":false`)
	assert.Contains(t, responseBody, "No territory matched")
}

func TestQuoteHandler_FindAssignment_MalformedCoordinates(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	c, rec := newQuoteTestContext(http.MethodGet, "/assignments?lat=abc&lng=10", "")

	err := handler.FindAssignment(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_COORDINATES")
}

func TestQuoteHandler_GetQuote_NotFound(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	quoteID := uuid.New()

	mockQuoteUC.EXPECT().
		GetQuote(mock.Anything, quoteID).
		Return(nil, domainerrors.ErrQuoteNotFound)

	c, rec := newQuoteTestContext(http.MethodGet, "/quotes/"+quoteID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(quoteID.String())

	err := handler.GetQuote(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "QUOTE_NOT_FOUND")
}

func TestQuoteHandler_ListQuotes_InvalidLimit(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	c, rec := newQuoteTestContext(http.MethodGet, "/quotes?limit=-3", "")

	err := handler.ListQuotes(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_LIMIT")
}

func TestQuoteHandler_DeleteQuote_InvalidID(t *testing.T) {
	mockQuoteUC := mockUC.NewMockQuoteUsecase(t)
	handler := &QuoteHandler{
		quoteUC: mockQuoteUC,
		logger:  slog.Default(),
	}

	c, rec := newQuoteTestContext(http.MethodDelete, "/quotes/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.DeleteQuote(c)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
