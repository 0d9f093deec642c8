package handlers

import (
	"net/http"
	"time"

	"motorhub/cron"
	"motorhub/models"
	"motorhub/services/promo"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// PromoHandler serves promotion countdown state.
type PromoHandler struct {
	Registry   *promo.Registry
	TaskClient *asynq.Client
	Logger     *zap.Logger
}

func NewPromoHandler(registry *promo.Registry, taskClient *asynq.Client, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{Registry: registry, TaskClient: taskClient, Logger: logger}
}

// ListPromotionsHandler handles GET /api/promotions.
func (h *PromoHandler) ListPromotionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"promotions": h.Registry.List()})
}

// ResetPromotionHandler handles POST /api/promotions/:id/reset. This
// is the only way a countdown restarts.
func (h *PromoHandler) ResetPromotionHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Registry.Reset(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown promotion", "message": err.Error()})
		return
	}

	if h.TaskClient != nil {
		if err := cron.SchedulePromoExpiry(h.TaskClient, p.ID, p.EndsAt); err != nil {
			// The registry still expires lazily on read; log and move on.
			h.Logger.Warn("failed to schedule promo expiry task", zap.String("promoId", p.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"promotion": promo.Status{Promotion: p, Remaining: promo.FormatMMSS(time.Until(p.EndsAt))},
		"event":     models.NewEvent(models.EventPromoReset, "", p.ID),
	})
}
