package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"kumbara/internal/categories"
	"kumbara/internal/config"
	"kumbara/internal/database"
	_ "kumbara/internal/docs" // Import swagger docs
	"kumbara/internal/handlers"
	"kumbara/internal/logger"
	"kumbara/internal/services"
	"kumbara/internal/validator"
)

// @title           Kumbara API
// @version         1.0
// @description     Kumbara is a personal income and expense tracker that buckets transactions by month and categorizes them from their descriptions.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey APIKeyAuth
// @in header
// @name X-API-Key
// @description Shared secret required on mutating routes when API_KEY is set.

func main() {
	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Init(appConfig.Env, appConfig.LogLevel)
	defer logger.Sync()
	log := logger.Get()

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	kv, closeStore, err := database.OpenStore(appConfig.Database)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warnw("Failed to close storage", "error", err)
		}
	}()

	categorizer := categories.Default()
	validator.Register(categorizer)

	store := services.NewTransactionStore(kv, categorizer)
	analytics := services.NewAnalyticsService(store, categorizer)

	router := handlers.NewRouter(handlers.RouterConfig{
		Store:       store,
		Analytics:   analytics,
		Categorizer: categorizer,
		APIKey:      appConfig.APIKey,
		Location:    appConfig.Location(),
	})

	if appConfig.APIKey == "" {
		log.Warn("API_KEY is empty; mutating routes are unauthenticated")
	}
	log.Infow("Starting Kumbara server",
		"port", appConfig.Port,
		"env", appConfig.Env,
		"storage", appConfig.Database.Driver,
		"months", len(store.GetAllMonths()),
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
