package handlers

import (
	"errors"
	"net/http"

	"motorhub/middleware"
	"motorhub/models"
	"motorhub/services/cart"
	"motorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the session cart ledger.
type CartHandler struct {
	Svc    cart.CartService
	Logger *zap.Logger
}

func NewCartHandler(svc cart.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{Svc: svc, Logger: logger}
}

type cartLineInput struct {
	ItemID     string `json:"itemId" binding:"required"`
	ProviderID string `json:"providerId"`
	Quantity   int    `json:"quantity"`
	Delta      int    `json:"delta"`
}

func (in cartLineInput) key() models.LineKey {
	return models.LineKey{ItemID: in.ItemID, ProviderID: in.ProviderID}
}

func (h *CartHandler) respond(c *gin.Context, summary models.CartSummary, err error, event models.EventType, subject string) {
	if err != nil {
		var cartErr *cart.CartError
		if errors.As(err, &cartErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   cartErr.Code,
				"message": cartErr.Message,
			})
			return
		}
		h.Logger.Error("cart operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "cart operation failed",
			"message": err.Error(),
		})
		return
	}
	resp := gin.H{"cart": summary}
	if event != "" {
		resp["event"] = models.NewEvent(event, summary.SessionID, subject)
	}
	c.JSON(http.StatusOK, resp)
}

// GetCartHandler handles GET /api/cart.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	summary, err := h.Svc.Summary(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, summary, err, "", "")
}

// AddItemHandler handles POST /api/cart/items. A missing quantity
// defaults to 1; an existing key has its quantity incremented.
func (h *CartHandler) AddItemHandler(c *gin.Context) {
	var in cartLineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	summary, err := h.Svc.AddItem(c.Request.Context(), middleware.SessionID(c), in.key(), in.Quantity)
	h.respond(c, summary, err, models.EventItemAdded, in.ItemID)
}

// RemoveItemHandler handles DELETE /api/cart/items.
func (h *CartHandler) RemoveItemHandler(c *gin.Context) {
	var in cartLineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	summary, err := h.Svc.RemoveItem(c.Request.Context(), middleware.SessionID(c), in.key())
	h.respond(c, summary, err, models.EventItemRemoved, in.ItemID)
}

// SetQuantityHandler handles PUT /api/cart/items/quantity.
func (h *CartHandler) SetQuantityHandler(c *gin.Context) {
	var in cartLineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	summary, err := h.Svc.SetQuantity(c.Request.Context(), middleware.SessionID(c), in.key(), in.Quantity)
	h.respond(c, summary, err, models.EventQuantitySet, in.ItemID)
}

// AdjustQuantityHandler handles POST /api/cart/items/adjust. Decrements
// floor at quantity 1; removal is only via the delete endpoint.
func (h *CartHandler) AdjustQuantityHandler(c *gin.Context) {
	var in cartLineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	summary, err := h.Svc.AdjustQuantity(c.Request.Context(), middleware.SessionID(c), in.key(), in.Delta)
	h.respond(c, summary, err, models.EventQuantitySet, in.ItemID)
}

// PruneStaleHandler handles POST /api/cart/prune.
func (h *CartHandler) PruneStaleHandler(c *gin.Context) {
	summary, err := h.Svc.PruneStaleLines(c.Request.Context(), middleware.SessionID(c))
	h.respond(c, summary, err, "", "")
}
