// File: motorhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"motorhub/config"
	"motorhub/cron"
	"motorhub/database"
	catalogRepo "motorhub/database/repository/catalog"
	"motorhub/handlers"
	"motorhub/middleware"
	"motorhub/routes"
	cartSvc "motorhub/services/cart"
	catalogSvc "motorhub/services/catalog"
	"motorhub/services/promo"
	"motorhub/services/recommend"
	"motorhub/services/rewards"
	"motorhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SessionMiddleware())

	// Catalog store and feed.
	feedRepo := catalogRepo.NewMongoCatalogRepo()
	store := catalogSvc.NewStore()
	promoRegistry := promo.NewRegistry(nil)

	refresher := &catalogSvc.Refresher{
		Repo:     feedRepo,
		Store:    store,
		Promos:   promoRegistry,
		Interval: time.Duration(config.AppConfig.CatalogRefreshSec) * time.Second,
		Logger:   logger,
	}
	if err := refresher.RefreshOnce(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to load initial catalog snapshot: %v", err)
	}
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	go refresher.Run(refreshCtx)

	// Promotion expiry worker.
	promoTaskClient := cron.NewPromoTaskClient()
	cron.InitPromoWorker(promoRegistry)
	for _, p := range promoRegistry.List() {
		if p.Active {
			if err := cron.SchedulePromoExpiry(promoTaskClient, p.ID, p.EndsAt); err != nil {
				logger.Sugar().Warnf("main: failed to schedule expiry for promo %s: %v", p.ID, err)
			}
		}
	}

	// Services.
	pricer := catalogSvc.Pricer{Promos: promoRegistry}
	catalogService := &catalogSvc.DefaultCatalogService{
		Store:  store,
		Pricer: pricer,
	}

	cartService := &cartSvc.DefaultCartService{
		Sessions: cartSvc.NewSessionStore(utils.GetCartCacheClient()),
		Catalog:  catalogService,
		Summarizer: cartSvc.Summarizer{
			Pricer: pricer,
			Rules: cartSvc.PricingRules{
				TaxRate:               config.AppConfig.TaxRate,
				FreeShippingThreshold: config.AppConfig.FreeShippingThreshold,
				ShippingFee:           config.AppConfig.ShippingFee,
				PointsPerUnit:         config.AppConfig.PointsPerUnit,
				PointsUnit:            config.AppConfig.PointsUnit,
			},
		},
		Logger: logger,
	}

	rewardsService := &rewards.DefaultRewardsService{
		Client: utils.GetRewardsCacheClient(),
		Logger: logger,
	}

	generator := recommend.NewGenerator(time.Now().UnixNano())

	// Handlers.
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)
	wishlistHandler := handlers.NewWishlistHandler(cartService, logger)
	recommendHandler := handlers.NewRecommendHandler(generator, cartService, catalogService, logger)
	rewardsHandler := handlers.NewRewardsHandler(rewardsService, logger)
	promoHandler := handlers.NewPromoHandler(promoRegistry, promoTaskClient, logger)
	checkoutHandler := handlers.NewCheckoutHandler(cartService, rewardsService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		FilterProducts: catalogHandler.FilterProductsHandler,
		FilterServices: catalogHandler.FilterServicesHandler,
		ListVehicles:   catalogHandler.ListVehiclesHandler,

		// Cart endpoints.
		GetCart:        cartHandler.GetCartHandler,
		AddCartItem:    cartHandler.AddItemHandler,
		RemoveCartItem: cartHandler.RemoveItemHandler,
		SetQuantity:    cartHandler.SetQuantityHandler,
		AdjustQuantity: cartHandler.AdjustQuantityHandler,
		PruneCart:      cartHandler.PruneStaleHandler,

		// Wishlist endpoints.
		GetWishlist:    wishlistHandler.GetWishlistHandler,
		ToggleWishlist: wishlistHandler.ToggleWishlistHandler,

		// Recommendation endpoints.
		GetRecommendations: recommendHandler.GetRecommendationsHandler,

		// Rewards endpoints.
		GetRewards:   rewardsHandler.GetRewardsHandler,
		RedeemPoints: rewardsHandler.RedeemPointsHandler,

		// Promotion endpoints.
		ListPromotions: promoHandler.ListPromotionsHandler,
		ResetPromotion: promoHandler.ResetPromotionHandler,

		// Checkout endpoints.
		CreatePaymentIntent: checkoutHandler.CreatePaymentIntentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopRefresh()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
