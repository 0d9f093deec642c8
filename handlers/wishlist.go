package handlers

import (
	"net/http"

	"motorhub/middleware"
	"motorhub/models"
	"motorhub/services/cart"
	"motorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WishlistHandler serves the session wishlist.
type WishlistHandler struct {
	Svc    cart.CartService
	Logger *zap.Logger
}

func NewWishlistHandler(svc cart.CartService, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{Svc: svc, Logger: logger}
}

// GetWishlistHandler handles GET /api/wishlist.
func (h *WishlistHandler) GetWishlistHandler(c *gin.Context) {
	w, err := h.Svc.Wishlist(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("GetWishlist failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wishlist", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": w})
}

// ToggleWishlistHandler handles POST /api/wishlist/toggle.
func (h *WishlistHandler) ToggleWishlistHandler(c *gin.Context) {
	var in struct {
		ItemID     string `json:"itemId" binding:"required"`
		ProviderID string `json:"providerId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	key := models.LineKey{ItemID: in.ItemID, ProviderID: in.ProviderID}
	w, present, err := h.Svc.ToggleWishlistEntry(c.Request.Context(), middleware.SessionID(c), key)
	if err != nil {
		h.Logger.Error("ToggleWishlist failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle wishlist", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"wishlist": w,
		"present":  present,
		"event":    models.NewEvent(models.EventWishlistToggle, w.SessionID, in.ItemID),
	})
}
