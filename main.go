// File: storefront/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/database"
	catalogRepo "storefront/database/repository/catalog"
	customerRepo "storefront/database/repository/customer"
	"storefront/handlers"
	"storefront/middleware"
	"storefront/routes"
	"storefront/services/cart"
	"storefront/services/checkout"
	"storefront/services/identity"
	"storefront/services/order"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	custRepo := customerRepo.NewMongoCustomerRepo()

	// services.
	cartService := &cart.DefaultCartService{
		Store:   cart.NewRedisCartStore(utils.GetCartCacheClient()),
		Catalog: catRepo,
	}

	identityResolver := &identity.DefaultResolver{
		Customers: custRepo,
	}

	submissionService := &order.DefaultSubmissionService{
		MerchantID: config.AppConfig.MerchantID,
		Client:     order.NewHTTPOrdersClient(config.AppConfig.OrdersAPIURL, config.AppConfig.OrdersAPIKey),
		Carts:      cartService,
		LinkStore:  order.NewRedisLinkTokenStore(utils.GetLinkCacheClient()),
	}

	checkoutService := &checkout.DefaultCheckoutService{
		Sessions: checkout.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Carts:    cartService,
		Identity: identityResolver,
		Orders:   submissionService,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Cart:     handlers.NewCartHandler(cartService),
		Checkout: handlers.NewCheckoutHandler(checkoutService),
		Catalog:  handlers.NewCatalogHandler(catRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"carts":    utils.GetCartCacheClient(),
		"sessions": utils.GetSessionCacheClient(),
		"links":    utils.GetLinkCacheClient(),
	}, database.MongoClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
