package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sainaa19/StockWise/config"
	_ "github.com/sainaa19/StockWise/docs"
	"github.com/sainaa19/StockWise/internal/cache"
	"github.com/sainaa19/StockWise/internal/database"
	"github.com/sainaa19/StockWise/internal/handlers"
	"github.com/sainaa19/StockWise/internal/middleware"
	"github.com/sainaa19/StockWise/internal/repository"
	"github.com/sainaa19/StockWise/internal/scheduler"
	"github.com/sainaa19/StockWise/internal/services"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title StockWise API
// @version 1.0
// @description Portfolio analytics, recommendations and savings projections
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize database connection
	db, err := database.New(ctx, cfg.PGURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize cache
	quoteCache := cache.NewMemoryCache(time.Duration(cfg.QuoteTTLMinutes) * time.Minute)

	// Initialize repositories
	holdingRepo := repository.NewHoldingRepository(db.Pool)
	quoteRepo := repository.NewQuoteRepository(db.Pool)

	// Initialize services
	pricingSvc := services.NewPricingService(quoteCache, quoteRepo, holdingRepo)
	portfolioSvc := services.NewPortfolioService(holdingRepo)
	savingsSvc := services.NewSavingsService()

	// Initialize handlers
	portfolioHandler := handlers.NewPortfolioHandler(portfolioSvc, pricingSvc)
	recommendationHandler := handlers.NewRecommendationHandler(portfolioSvc)
	savingsHandler := handlers.NewSavingsHandler(savingsSvc)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.ValidateUser())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Portfolio routes
	router.GET("/portfolio", middleware.RequireAuth(), portfolioHandler.GetDashboard)
	router.PUT("/portfolio/holdings", middleware.RequireAuth(), portfolioHandler.ReplaceHoldings)
	router.POST("/portfolio/holdings/upload", middleware.RequireAuth(), portfolioHandler.UploadHoldings)
	router.POST("/portfolio/refresh-prices", middleware.RequireAuth(), portfolioHandler.RefreshPrices)

	// Recommendation routes
	router.GET("/recommendations", middleware.RequireAuth(), recommendationHandler.List)

	// Savings routes
	router.POST("/savings/plan", savingsHandler.CreatePlan)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Start the background price refresh
	sched := scheduler.New(pricingSvc)
	if err := sched.Register(cfg.PriceRefreshCron); err != nil {
		log.Fatalf("Failed to register scheduled jobs: %v", err)
	}
	sched.Start()

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	sched.Stop()

	// Give outstanding requests 5 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	fmt.Println("Server exited")
}
