package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kumbara/internal/categories"
	"kumbara/internal/middleware"
	"kumbara/internal/services"
)

// RouterConfig holds the dependencies of the HTTP API.
type RouterConfig struct {
	Store       services.TransactionStorer
	Analytics   services.AnalyticsServicer
	Categorizer *categories.Categorizer
	// APIKey guards mutating routes. Empty disables the check.
	APIKey string
	// Location is the timezone of formatted dates. Nil means UTC.
	Location *time.Location
}

// NewRouter builds the Gin engine serving the API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	categoryHandler := NewCategoryHandler(cfg.Categorizer)
	transactionHandler := NewTransactionHandler(cfg.Store, cfg.Categorizer, cfg.Location)
	monthHandler := NewMonthHandler(cfg.Store)
	analyticsHandler := NewAnalyticsHandler(cfg.Analytics)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.APIKeyHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	write := middleware.APIKeyAuth(cfg.APIKey)

	// Category routes
	categoriesGroup := v1.Group("/categories")
	categoriesGroup.GET("", categoryHandler.ListCategories)
	categoriesGroup.POST("/categorize", categoryHandler.Categorize)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", write, transactionHandler.CreateTransaction)
	transactions.POST("/recategorize", write, transactionHandler.RecategorizeAll)
	transactions.POST("/mark-pending", write, transactionHandler.MarkAllAsPending)
	transactions.DELETE("/:id", write, transactionHandler.DeleteTransaction)
	transactions.PATCH("/:id/payment", write, transactionHandler.UpdatePaymentStatus)

	// Month routes
	months := v1.Group("/months")
	months.GET("", monthHandler.ListMonths)
	months.GET("/:month/transactions", monthHandler.GetMonthTransactions)
	months.GET("/:month/stats", monthHandler.GetMonthStats)

	// Analytics routes
	analytics := v1.Group("/analytics")
	analytics.GET("/overview", analyticsHandler.GetOverview)
	analytics.GET("/categories", analyticsHandler.GetCategoryTotals)
	analytics.GET("/trend", analyticsHandler.GetTrend)

	return router
}
