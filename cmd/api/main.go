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
	"github.com/promptgallery/backend/internal/config"
	"github.com/promptgallery/backend/internal/handlers"
	"github.com/promptgallery/backend/internal/middleware"
	"github.com/promptgallery/backend/internal/models"
	"github.com/promptgallery/backend/internal/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.New()

	// Initialize database
	db, err := models.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Run migrations
	if err := models.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis
	redisClient := models.InitRedis(cfg)
	defer redisClient.Close()

	// Initialize services
	authService := services.NewAuthService(db, cfg)
	generatorService := services.NewGeneratorService(cfg)
	generationService := services.NewGenerationService(db, generatorService)
	imageService := services.NewImageService(db)
	favoriteService := services.NewFavoriteService(db)
	historyService := services.NewHistoryService(db)
	categoryService := services.NewCategoryService(db)
	shareService := services.NewShareService()

	// Seed reference data and the demo account
	if err := authService.EnsureDemoUser(); err != nil {
		log.Printf("Failed to seed demo user: %v", err)
	}
	if err := categoryService.SeedDefaults(); err != nil {
		log.Printf("Failed to seed categories: %v", err)
	}

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimiter(redisClient, cfg))
	router.Use(middleware.OptionalAuth(authService))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	generationHandler := handlers.NewGenerationHandler(generationService)
	galleryHandler := handlers.NewGalleryHandler(imageService, categoryService, shareService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup routes
	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		// Catch-all OPTIONS handler for CORS preflight requests
		api.OPTIONS("/*path", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})

		api.POST("/auth/login", authHandler.Login)

		api.POST("/generate", generationHandler.Generate)

		api.GET("/images", galleryHandler.GetImages)
		api.DELETE("/images/:id", galleryHandler.DeleteImage)
		api.GET("/images/:id/qr.pdf", galleryHandler.GetImageQRPDF)
		api.GET("/categories", galleryHandler.GetCategories)

		api.POST("/favorites", favoriteHandler.AddFavorite)

		user := api.Group("/user/:userId")
		{
			user.GET("/images", galleryHandler.GetUserImages)
			user.GET("/favorites", favoriteHandler.GetFavorites)
			user.GET("/history", historyHandler.GetHistory)
		}
	}

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close the pooled database connection last
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}

	log.Println("Server exited")
}
