package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"atlas/internal/delivery/http/response"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	QuoteUC usecase.QuoteUsecase
	Logger  *slog.Logger
}

// QuoteHandler holds dependencies for quote-related handlers
type QuoteHandler struct {
	quoteUC usecase.QuoteUsecase
	logger  *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: params.QuoteUC,
		logger:  params.Logger,
	}
}

// CreateQuoteRequest represents the request body for creating a quote.
// Coordinates are required; the address is free text kept for display.
type CreateQuoteRequest struct {
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// CreateQuote handles creating a quote and assigning it to a partner territory
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateQuoteInput{
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}

	quote, err := h.quoteUC.CreateQuote(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, quote, "Quote created successfully")
}

// FindAssignment handles the dry-run point lookup. Nothing is persisted; a
// point outside every territory yields a 200 with matched=false.
func (h *QuoteHandler) FindAssignment(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat query parameter must be a number")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "lng query parameter must be a number")
	}

	assignment, err := h.quoteUC.FindAssignment(c.Request().Context(), latitude, longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	if assignment == nil {
		return response.Success(c, http.StatusOK, map[string]any{"matched": false}, "No territory matched")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"matched":    true,
		"assignment": assignment,
	}, "Assignment found")
}

// GetQuote handles retrieving one quote by ID
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	quote, err := h.quoteUC.GetQuote(c.Request().Context(), quoteID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Quote retrieved successfully")
}

// ListQuotes handles listing quotes filtered by status, partner or both
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	input := &usecase.ListQuotesInput{
		Status: c.QueryParam("status"),
	}

	if raw := c.QueryParam("partner_id"); raw != "" {
		partnerID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid partner ID")
		}
		input.PartnerID = &partnerID
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		input.Limit = limit
	}

	quotes, err := h.quoteUC.ListQuotes(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotes, "Quotes retrieved successfully")
}

// DeleteQuote handles removing a quote
func (h *QuoteHandler) DeleteQuote(c echo.Context) error {
	quoteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid quote ID")
	}

	if err := h.quoteUC.DeleteQuote(c.Request().Context(), quoteID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Quote deleted successfully"}, "Quote deleted successfully")
}

// handleAppError handles application errors
func (h *QuoteHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
