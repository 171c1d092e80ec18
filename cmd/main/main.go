package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"glass-catalog-service/internal/config"
	"glass-catalog-service/internal/events"
	"glass-catalog-service/internal/handlers"
	"glass-catalog-service/internal/middleware"
	"glass-catalog-service/internal/models"
	"glass-catalog-service/internal/prefs"
	"glass-catalog-service/internal/repository"
	"glass-catalog-service/internal/services"
	"glass-catalog-service/internal/units"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.CatalogItem{},
		&models.InventoryItem{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize logrus logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize NATS event publisher (optional - graceful degradation if NATS unavailable)
	var eventPublisher *events.Publisher
	if cfg.NATSURL != "" {
		eventPublisher, err = events.NewPublisher(cfg.NATSURL, logger)
		if err != nil {
			log.Printf("Warning: Failed to initialize NATS event publisher: %v", err)
			log.Println("Continuing without event publishing...")
			eventPublisher = nil
		} else {
			log.Println("Connected to NATS JetStream for event publishing")
			defer eventPublisher.Close()
		}
	} else {
		log.Println("NATS_URL not configured, event publishing disabled")
	}

	// Preference store: Redis when configured, in-memory otherwise
	redisClient := config.InitRedis(cfg)
	var prefStore prefs.Store
	if redisClient != nil {
		prefStore = prefs.NewRedisStore(redisClient)
		log.Println("Using Redis preference store")
	} else {
		prefStore = prefs.NewMemoryStore()
		log.Println("REDIS_ADDR not configured, using in-memory preference store")
	}
	prefService := prefs.NewService(prefStore)

	// Seed the weight unit preference from config when none is stored yet
	if defaultUnit, ok := units.Parse(cfg.DefaultWeightUnit); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if stored, prefErr := prefService.WeightUnit(ctx); prefErr == nil && stored == nil && defaultUnit != units.Pounds {
			if setErr := prefService.SetWeightUnit(ctx, defaultUnit); setErr != nil {
				log.Printf("Warning: failed to seed weight unit preference: %v", setErr)
			}
		}
		cancel()
	}

	// Initialize repositories
	catalogRepo := repository.NewGormCatalogRepository(db)
	inventoryRepo := repository.NewGormInventoryRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(catalogRepo, prefService, eventPublisher, logger)
	inventoryService := services.NewInventoryService(inventoryRepo, catalogRepo, prefService, eventPublisher, logger)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	prefsHandler := handlers.NewPrefsHandler(prefService)
	importHandler := handlers.NewImportHandler(catalogService)
	healthHandler := handlers.NewHealthHandler(db, redisClient)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	// Health check endpoints
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)
	router.GET("/health/extended", healthHandler.ExtendedHealthCheck)

	api := router.Group("/api/v1")

	// Catalog routes
	catalog := api.Group("/catalog")
	{
		catalog.POST("", catalogHandler.CreateCatalogItem)
		catalog.GET("", catalogHandler.ListCatalogItems)
		catalog.GET("/:id", catalogHandler.GetCatalogItem)
		catalog.PUT("/:id", catalogHandler.UpdateCatalogItem)
		catalog.DELETE("/:id", catalogHandler.DeleteCatalogItem)

		// Import/Export
		catalog.GET("/import/template", importHandler.GetCatalogImportTemplate)
		catalog.POST("/import", importHandler.ImportCatalog)
		catalog.GET("/export", importHandler.ExportCatalog)
	}

	// Inventory routes
	inventory := api.Group("/inventory")
	{
		inventory.POST("", inventoryHandler.CreateInventoryItem)
		inventory.GET("", inventoryHandler.ListInventoryItems)
		inventory.GET("/consolidated", inventoryHandler.GetConsolidatedInventory)
		inventory.GET("/total", inventoryHandler.GetTotalQuantity)
		inventory.GET("/codes", inventoryHandler.GetDistinctCatalogCodes)
		inventory.GET("/:id", inventoryHandler.GetInventoryItem)
		inventory.PUT("/:id", inventoryHandler.UpdateInventoryItem)
		inventory.DELETE("/:id", inventoryHandler.DeleteInventoryItem)
	}

	// Preference routes
	preferences := api.Group("/preferences")
	{
		preferences.GET("", prefsHandler.GetPreferences)
		preferences.PUT("/coe", prefsHandler.SetCOE)
		preferences.DELETE("/coe", prefsHandler.ResetCOE)
		preferences.PUT("/manufacturers", prefsHandler.SetManufacturers)
		preferences.DELETE("/manufacturers", prefsHandler.ResetManufacturers)
		preferences.PUT("/weight-unit", prefsHandler.SetWeightUnit)
		preferences.DELETE("/weight-unit", prefsHandler.ResetWeightUnit)
	}

	// Manufacturer registry
	api.GET("/manufacturers", prefsHandler.ListManufacturers)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Glass catalog service starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down glass-catalog-service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Glass catalog service stopped")
}
