package handler

import (
	"encoding/json"
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

// TerritoryHandlerParams holds dependencies for TerritoryHandler, injected by Fx.
type TerritoryHandlerParams struct {
	fx.In

	TerritoryUC usecase.TerritoryUsecase
	Logger      *slog.Logger
}

// TerritoryHandler holds dependencies for territory-related handlers
type TerritoryHandler struct {
	territoryUC usecase.TerritoryUsecase
	logger      *slog.Logger
}

// NewTerritoryHandler is the constructor for TerritoryHandler
func NewTerritoryHandler(params TerritoryHandlerParams) *TerritoryHandler {
	return &TerritoryHandler{
		territoryUC: params.TerritoryUC,
		logger:      params.Logger,
	}
}

// CreateTerritoryRequest represents the request body for creating a territory.
// Geometry is a GeoJSON Polygon, MultiPolygon, Feature or FeatureCollection.
type CreateTerritoryRequest struct {
	PartnerID uuid.UUID       `json:"partner_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Priority  int             `json:"priority" validate:"min=0"`
	Geometry  json.RawMessage `json:"geometry" validate:"required"`
}

// UpdateTerritoryRequest represents the request body for updating a territory
type UpdateTerritoryRequest struct {
	PartnerID *uuid.UUID      `json:"partner_id,omitempty"`
	Name      *string         `json:"name,omitempty"`
	Priority  *int            `json:"priority,omitempty" validate:"omitempty,min=0"`
	Geometry  json.RawMessage `json:"geometry,omitempty"`
}

// CreateTerritory handles creating a new territory for a partner
func (h *TerritoryHandler) CreateTerritory(c echo.Context) error {
	var req CreateTerritoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid territory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateTerritoryInput{
		PartnerID: req.PartnerID,
		Name:      req.Name,
		Priority:  req.Priority,
		Geometry:  req.Geometry,
	}

	territory, err := h.territoryUC.CreateTerritory(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, territory, "Territory created successfully")
}

// GetTerritory handles retrieving one territory with its GeoJSON geometry
func (h *TerritoryHandler) GetTerritory(c echo.Context) error {
	territoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid territory ID")
	}

	territory, err := h.territoryUC.GetTerritory(c.Request().Context(), territoryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, territory, "Territory retrieved successfully")
}

// ListTerritories handles retrieving all territories
func (h *TerritoryHandler) ListTerritories(c echo.Context) error {
	territories, err := h.territoryUC.ListTerritories(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, territories, "Territories retrieved successfully")
}

// ListPartnerTerritories handles retrieving all territories owned by one partner
func (h *TerritoryHandler) ListPartnerTerritories(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid partner ID")
	}

	territories, err := h.territoryUC.ListTerritoriesByPartner(c.Request().Context(), partnerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, territories, "Territories retrieved successfully")
}

// UpdateTerritory handles updating an existing territory
func (h *TerritoryHandler) UpdateTerritory(c echo.Context) error {
	territoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid territory ID")
	}

	var req UpdateTerritoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid territory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateTerritoryInput{
		PartnerID: req.PartnerID,
		Name:      req.Name,
		Priority:  req.Priority,
		Geometry:  req.Geometry,
	}

	territory, err := h.territoryUC.UpdateTerritory(c.Request().Context(), territoryID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, territory, "Territory updated successfully")
}

// DeleteTerritory handles removing a territory
func (h *TerritoryHandler) DeleteTerritory(c echo.Context) error {
	territoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid territory ID")
	}

	if err := h.territoryUC.DeleteTerritory(c.Request().Context(), territoryID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Territory deleted successfully"}, "Territory deleted successfully")
}

// GetTerritoryOverlaps handles listing every territory overlapping the given one
func (h *TerritoryHandler) GetTerritoryOverlaps(c echo.Context) error {
	territoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid territory ID")
	}

	pairs, err := h.territoryUC.OverlapsFor(c.Request().Context(), territoryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pairs, "Overlaps retrieved successfully")
}

// GetAllOverlaps handles the global overlap audit. The optional limit query
// parameter caps the reported pairs; limit=0 disables the cap.
func (h *TerritoryHandler) GetAllOverlaps(c echo.Context) error {
	limit := -1
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	audit, err := h.territoryUC.AllOverlaps(c.Request().Context(), limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, audit, "Overlap audit retrieved successfully")
}

// ResolveOverlap handles raising a territory's priority above everything it overlaps
func (h *TerritoryHandler) ResolveOverlap(c echo.Context) error {
	territoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid territory ID")
	}

	result, err := h.territoryUC.ResolveOverlap(c.Request().Context(), territoryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Overlap resolved successfully")
}

// handleAppError handles application errors
func (h *TerritoryHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
