package handlers

import (
	"net/http"

	"motorhub/config"
	"motorhub/middleware"
	"motorhub/models"
	"motorhub/services/cart"
	"motorhub/services/rewards"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CheckoutHandler turns the cart's grand total into a Stripe
// PaymentIntent and credits the earned reward points.
type CheckoutHandler struct {
	CartSvc    cart.CartService
	RewardsSvc rewards.RewardsService
	Logger     *zap.Logger
}

func NewCheckoutHandler(cartSvc cart.CartService, rewardsSvc rewards.RewardsService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{CartSvc: cartSvc, RewardsSvc: rewardsSvc, Logger: logger}
}

// CreatePaymentIntentHandler handles POST /api/checkout/payment-intent.
func (h *CheckoutHandler) CreatePaymentIntentHandler(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	summary, err := h.CartSvc.Summary(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Error("CreatePaymentIntent: failed to summarize cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart", "message": err.Error()})
		return
	}
	if summary.GrandTotal <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "empty cart",
			"message": "cannot create a payment intent for an empty cart",
		})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(summary.GrandTotal),
		Currency: stripe.String(config.AppConfig.Currency),
	}
	params.AddMetadata("sessionId", sessionID)

	pi, err := paymentintent.New(params)
	if err != nil {
		h.Logger.Error("CreatePaymentIntent: stripe error", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment intent failed", "message": err.Error()})
		return
	}

	account, err := h.RewardsSvc.Grant(c.Request.Context(), sessionID, summary.Points, models.GrantOrderPlaced)
	if err != nil {
		// Points are a courtesy; the payment intent already exists.
		h.Logger.Warn("CreatePaymentIntent: failed to grant points", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": pi.ClientSecret,
		"amount":       summary.GrandTotal,
		"cart":         summary,
		"rewards":      account,
		"event":        models.NewEvent(models.EventPointsGranted, sessionID, ""),
	})
}
