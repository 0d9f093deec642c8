package handlers

import (
	"net/http"

	"motorhub/middleware"
	"motorhub/models"
	"motorhub/services/catalog"
	"motorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the browse surface: facet filtering, sorting
// and the reference listings.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// FilterProductsHandler handles POST /api/catalog/filter.
func (h *CatalogHandler) FilterProductsHandler(c *gin.Context) {
	var state models.FilterState
	if err := c.ShouldBindJSON(&state); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter state", err.Error())
		return
	}
	if state.PriceMin != nil && state.PriceMax != nil && *state.PriceMin > *state.PriceMax {
		utils.JSONError(c, http.StatusBadRequest, "invalid price range", "priceMin must not exceed priceMax")
		return
	}

	// An empty result set is a valid outcome, not a failure.
	products := h.Svc.BrowseProducts(state)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
		"event":    models.NewEvent(models.EventFilterApplied, middleware.SessionID(c), ""),
	})
}

// FilterServicesHandler handles POST /api/catalog/services/filter.
func (h *CatalogHandler) FilterServicesHandler(c *gin.Context) {
	var state models.FilterState
	if err := c.ShouldBindJSON(&state); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter state", err.Error())
		return
	}

	services := h.Svc.BrowseServices(state)
	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// ListVehiclesHandler handles GET /api/catalog/vehicles.
func (h *CatalogHandler) ListVehiclesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vehicles": h.Svc.Vehicles()})
}
