// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"
	"atlas/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PartnerHandler   *handler.PartnerHandler
	TerritoryHandler *handler.TerritoryHandler
	QuoteHandler     *handler.QuoteHandler
	GeocodeHandler   *handler.GeocodeHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	partnerHandler   *handler.PartnerHandler
	territoryHandler *handler.TerritoryHandler
	quoteHandler     *handler.QuoteHandler
	geocodeHandler   *handler.GeocodeHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		partnerHandler:   params.PartnerHandler,
		territoryHandler: params.TerritoryHandler,
		quoteHandler:     params.QuoteHandler,
		geocodeHandler:   params.GeocodeHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public quote form endpoints, no token required
	e.GET("/geocode", r.geocodeHandler.Geocode)
	e.GET("/assignments", r.quoteHandler.FindAssignment)
	e.POST("/quotes", r.quoteHandler.CreateQuote)

	// Partner routes
	partnerRead := e.Group("/partners")
	partnerRead.Use(r.authMiddleware.Authenticate)
	{
		partnerRead.GET("", r.partnerHandler.ListPartners)
		partnerRead.GET("/:id", r.partnerHandler.GetPartner)
		partnerRead.GET("/:id/territories", r.territoryHandler.ListPartnerTerritories)
	}

	partnerStaff := e.Group("/partners")
	partnerStaff.Use(r.authMiddleware.Authenticate)
	partnerStaff.Use(r.authMiddleware.RequireRole(entity.RoleStaff))
	{
		partnerStaff.POST("", r.partnerHandler.CreatePartner)
		partnerStaff.PUT("/:id", r.partnerHandler.UpdatePartner)
	}

	partnerAdmin := e.Group("/partners")
	partnerAdmin.Use(r.authMiddleware.Authenticate)
	partnerAdmin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		partnerAdmin.DELETE("/:id", r.partnerHandler.DeletePartner)
	}

	// Territory routes, including the overlap audit
	territoryRead := e.Group("/territories")
	territoryRead.Use(r.authMiddleware.Authenticate)
	{
		territoryRead.GET("", r.territoryHandler.ListTerritories)
		territoryRead.GET("/:id", r.territoryHandler.GetTerritory)
		territoryRead.GET("/:id/overlaps", r.territoryHandler.GetTerritoryOverlaps)
	}

	territoryStaff := e.Group("/territories")
	territoryStaff.Use(r.authMiddleware.Authenticate)
	territoryStaff.Use(r.authMiddleware.RequireRole(entity.RoleStaff))
	{
		territoryStaff.POST("", r.territoryHandler.CreateTerritory)
		territoryStaff.PUT("/:id", r.territoryHandler.UpdateTerritory)
		territoryStaff.DELETE("/:id", r.territoryHandler.DeleteTerritory)
		territoryStaff.POST("/:id/resolve-overlap", r.territoryHandler.ResolveOverlap)
	}

	overlapRead := e.Group("/overlaps")
	overlapRead.Use(r.authMiddleware.Authenticate)
	{
		overlapRead.GET("", r.territoryHandler.GetAllOverlaps)
	}

	// Quote routes beyond the public create
	quoteStaff := e.Group("/quotes")
	quoteStaff.Use(r.authMiddleware.Authenticate)
	quoteStaff.Use(r.authMiddleware.RequireRole(entity.RoleStaff))
	{
		quoteStaff.GET("", r.quoteHandler.ListQuotes)
		quoteStaff.GET("/:id", r.quoteHandler.GetQuote)
	}

	quoteAdmin := e.Group("/quotes")
	quoteAdmin.Use(r.authMiddleware.Authenticate)
	quoteAdmin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		quoteAdmin.DELETE("/:id", r.quoteHandler.DeleteQuote)
	}
}
