package handlers

import (
	"net/http"

	"motorhub/middleware"
	"motorhub/models"
	"motorhub/services/cart"
	"motorhub/services/catalog"
	"motorhub/services/recommend"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendHandler serves cart-derived suggestions.
type RecommendHandler struct {
	Generator *recommend.Generator
	CartSvc   cart.CartService
	Catalog   catalog.CatalogService
	Logger    *zap.Logger
}

func NewRecommendHandler(gen *recommend.Generator, cartSvc cart.CartService, cat catalog.CatalogService, logger *zap.Logger) *RecommendHandler {
	return &RecommendHandler{Generator: gen, CartSvc: cartSvc, Catalog: cat, Logger: logger}
}

// GetRecommendationsHandler handles GET /api/recommendations. An empty
// cart yields an empty list: no recommendations without context.
func (h *RecommendHandler) GetRecommendationsHandler(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	ledger, err := h.CartSvc.Cart(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Error("GetRecommendations: failed to load cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart", "message": err.Error()})
		return
	}

	recs := h.Generator.Recommend(h.Catalog.Snapshot(), ledger)
	if recs == nil {
		recs = []models.Recommendation{}
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}
