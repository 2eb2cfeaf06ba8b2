package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-backend/controllers"
	"ecommerce-backend/database"
	"ecommerce-backend/middleware"
	"ecommerce-backend/repository"
	"ecommerce-backend/routes"
	"ecommerce-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		zap.L().Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := database.Connect(cfg.MongoURL, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	rdb := database.NewRedisClient(cfg.RedisURL)

	jwtSecret := []byte(cfg.JWTSecret)

	// Repositories
	productRepo := repository.NewMongoProductRepository(database.DB)
	branchRepo := repository.NewMongoBranchRepository(database.DB)
	branchProductRepo := repository.NewMongoBranchProductRepository(database.DB)
	notificationRepo := repository.NewMongoNotificationRepository(database.DB)
	deliveryBoyRepo := repository.NewMongoDeliveryBoyRepository(database.DB)
	branchAdminRepo := repository.NewMongoBranchAdminRepository(database.DB)
	userRepo := repository.NewMongoUserRepository(database.DB)
	orderRepo := repository.NewMongoOrderRepository(database.DB)
	reviewRepo := repository.NewMongoReviewRepository(database.DB)
	brandRepo := repository.NewMongoBrandRepository(database.DB)
	bannerRepo := repository.NewMongoBannerRepository(database.DB)

	// Services
	allocationService := services.NewAllocationService(productRepo, branchProductRepo, notificationRepo, logger)
	productService := services.NewProductService(productRepo, branchRepo, branchProductRepo, logger)
	catalogService := services.NewCatalogService(productRepo, logger)
	deliveryBoyService := services.NewDeliveryBoyService(deliveryBoyRepo, branchRepo, jwtSecret, logger)
	branchAdminService := services.NewBranchAdminService(branchAdminRepo, branchRepo, &services.LogOTPDeliverer{Logger: logger}, jwtSecret, logger)
	customerService := services.NewCustomerService(userRepo, orderRepo, productRepo, branchAdminRepo, branchRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, productRepo, logger)
	brandService := services.NewBrandService(brandRepo, bannerRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)

	// Controllers
	cache := controllers.NewCatalogCache(rdb, logger)
	ctrl := routes.Controllers{
		Products:      controllers.NewProductController(productService, allocationService, cache),
		UserProducts:  controllers.NewUserProductController(catalogService, cache),
		DeliveryBoys:  controllers.NewDeliveryBoyController(deliveryBoyService),
		BranchAdmins:  controllers.NewBranchAdminController(branchAdminService),
		Customers:     controllers.NewCustomerController(customerService),
		Reviews:       controllers.NewReviewController(reviewService),
		Brands:        controllers.NewBrandController(brandService),
		Notifications: controllers.NewNotificationController(notificationService),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, ctrl, jwtSecret)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := rdb.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		zap.L().Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	zap.L().Info("Server stopped gracefully")
}
