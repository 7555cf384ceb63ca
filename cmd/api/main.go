package main

import (
	"fmt"
	"net/http"
	"os"

	"tally/internal/config"
	"tally/internal/database"
	"tally/internal/handlers"
	"tally/internal/logger"
	"tally/internal/middleware"
	"tally/internal/services"
	"tally/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tally/internal/docs" // Import swagger docs
)

// @title           Tally Expense Tracker API
// @version         1.0
// @description     Tally records expenses and derives daily summaries and spending insights over them.

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validation.RegisterBindings()

	// Initialize services
	db := dbManager.DB()
	ledgerService := services.NewLedgerService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	expenseHandler := handlers.NewExpenseHandler(ledgerService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(appConfig.CORSOrigin))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness endpoints
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Expense Tracker API is running!",
			"docs":    "Visit /swagger/index.html for interactive API documentation",
		})
	})
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group
	api := router.Group("/api")

	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.GET("/range", expenseHandler.FilterByDateRange)
	expenses.GET("/category/:category", expenseHandler.FilterByCategory)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	api.GET("/summaries", reportHandler.GetSummaries)
	api.GET("/insights", reportHandler.GetInsights)
	api.GET("/categories", expenseHandler.GetCategories)

	log.Infof("Starting tally API server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
