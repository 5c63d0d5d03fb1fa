// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"atlas/internal/delivery/http/response"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PartnerHandlerParams holds dependencies for PartnerHandler, injected by Fx.
type PartnerHandlerParams struct {
	fx.In

	PartnerUC usecase.PartnerUsecase
	Logger    *slog.Logger
}

// PartnerHandler holds dependencies for partner-related handlers
type PartnerHandler struct {
	partnerUC usecase.PartnerUsecase
	logger    *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler
func NewPartnerHandler(params PartnerHandlerParams) *PartnerHandler {
	return &PartnerHandler{
		partnerUC: params.PartnerUC,
		logger:    params.Logger,
	}
}

// CreatePartnerRequest represents the request body for registering a partner
type CreatePartnerRequest struct {
	Name         string   `json:"name" validate:"required"`
	Category     string   `json:"category"`
	Languages    []string `json:"languages"`
	ContactName  string   `json:"contact_name"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string   `json:"contact_phone"`
	Active       bool     `json:"active"`
}

// UpdatePartnerRequest represents the request body for updating a partner
type UpdatePartnerRequest struct {
	Name         *string  `json:"name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	ContactName  *string  `json:"contact_name,omitempty"`
	ContactEmail *string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string  `json:"contact_phone,omitempty"`
	Active       *bool    `json:"active,omitempty"`
}

// CreatePartner handles registering a new partner
func (h *PartnerHandler) CreatePartner(c echo.Context) error {
	var req CreatePartnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreatePartnerInput{
		Name:         req.Name,
		Category:     req.Category,
		Languages:    req.Languages,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Active:       req.Active,
	}

	partner, err := h.partnerUC.CreatePartner(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, partner, "Partner created successfully")
}

// GetPartner handles retrieving one partner by ID
func (h *PartnerHandler) GetPartner(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid partner ID")
	}

	partner, err := h.partnerUC.GetPartner(c.Request().Context(), partnerID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partner, "Partner retrieved successfully")
}

// ListPartners handles retrieving all partners, optionally active ones only
func (h *PartnerHandler) ListPartners(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	partners, err := h.partnerUC.ListPartners(c.Request().Context(), activeOnly)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partners, "Partners retrieved successfully")
}

// UpdatePartner handles updating an existing partner
func (h *PartnerHandler) UpdatePartner(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid partner ID")
	}

	var req UpdatePartnerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdatePartnerInput{
		Name:         req.Name,
		Category:     req.Category,
		Languages:    req.Languages,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Active:       req.Active,
	}

	partner, err := h.partnerUC.UpdatePartner(c.Request().Context(), partnerID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, partner, "Partner updated successfully")
}

// DeletePartner handles removing a partner without territories
func (h *PartnerHandler) DeletePartner(c echo.Context) error {
	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid partner ID")
	}

	if err := h.partnerUC.DeletePartner(c.Request().Context(), partnerID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Partner deleted successfully"}, "Partner deleted successfully")
}

// handleAppError handles application errors
func (h *PartnerHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
