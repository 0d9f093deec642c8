package handlers

import (
	"net/http"

	"motorhub/middleware"
	"motorhub/models"
	"motorhub/services/rewards"
	"motorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RewardsHandler serves the session points balance.
type RewardsHandler struct {
	Svc    rewards.RewardsService
	Logger *zap.Logger
}

func NewRewardsHandler(svc rewards.RewardsService, logger *zap.Logger) *RewardsHandler {
	return &RewardsHandler{Svc: svc, Logger: logger}
}

// GetRewardsHandler handles GET /api/rewards.
func (h *RewardsHandler) GetRewardsHandler(c *gin.Context) {
	account, err := h.Svc.Account(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("GetRewards failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rewards", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rewards": account})
}

// RedeemPointsHandler handles POST /api/rewards/redeem. An insufficient
// balance is a 200 with redeemed=false, not an error: the balance stays
// untouched.
func (h *RewardsHandler) RedeemPointsHandler(c *gin.Context) {
	var in struct {
		Amount int64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Amount <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "amount must be a positive integer")
		return
	}

	sessionID := middleware.SessionID(c)
	account, ok, err := h.Svc.RedeemPoints(c.Request.Context(), sessionID, in.Amount)
	if err != nil {
		h.Logger.Error("RedeemPoints failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to redeem points", "message": err.Error()})
		return
	}

	resp := gin.H{"rewards": account, "redeemed": ok}
	if ok {
		resp["event"] = models.NewEvent(models.EventPointsRedeemed, sessionID, "")
	}
	c.JSON(http.StatusOK, resp)
}
