package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homefinder/internal/catalog"
	"homefinder/internal/config"
	"homefinder/internal/handler"
	"homefinder/internal/service"
	"homefinder/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Housing Assistant")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Seed the in-memory catalog with synthetic listings
	seed := cfg.Catalog.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cat := catalog.New(rand.New(rand.NewSource(seed)))
	cat.Seed(cfg.Catalog.HousesPerDistrict)
	log.Printf("✅ Catalog seeded with %d listings across %d districts", cat.Len(), len(catalog.Districts))

	// Single-session application state
	sess := session.New()
	log.Printf("✅ Session %s started", sess.ID())

	// Initialize OpenAI client
	var aiClient service.AIClient
	if cfg.OpenAI.Enabled {
		aiClient = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("✅ OpenAI client initialized")
		log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
		log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
		log.Printf("   - Chat Temperature: %.2f", cfg.OpenAI.Temperature)
		log.Printf("   - Chat TopP: %.2f", cfg.OpenAI.TopP)
		log.Printf("   - Chat MaxTokens: %d", cfg.OpenAI.MaxTokens)
	} else {
		log.Println("⚠️  OpenAI is disabled - the AI chat assistant will not work")
		log.Println("   Set OPENAI_API_KEY environment variable to enable it")
	}

	// Initialize services
	matcher := service.NewMatcher(cat)
	scorer := service.NewScorer(
		cfg.Scoring.WeightPrice,
		cfg.Scoring.WeightTransportation,
		cfg.Scoring.WeightSharedLiving,
	)
	assessor := service.NewEligibilityAssessor(cat, sess)
	assistant := service.NewAssistant(aiClient, sess, cfg.Assistant.HistoryLimit)
	roommates := service.NewRoommateMatcher(service.DefaultCandidates())

	log.Println("✅ Services initialized")

	// Initialize handlers
	matchHandler := handler.NewMatchHandler(matcher)
	listingHandler := handler.NewListingHandler(cat, assessor, sess)
	locationHandler := handler.NewLocationHandler(scorer, cat)
	chatHandler := handler.NewChatHandler(assistant, cfg.Assistant.DefaultLanguage)
	profileHandler := handler.NewProfileHandler(sess)
	roommateHandler := handler.NewRoommateHandler(roommates)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "housing-assistant",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Matching
		apiV1.POST("/match", matchHandler.Match)

		// Listings
		apiV1.GET("/listings/:id", listingHandler.GetListing)
		apiV1.POST("/listings", listingHandler.SubmitListing)
		apiV1.POST("/listings/:id/assess", listingHandler.Assess)
		apiV1.GET("/homes", listingHandler.Homes)

		// Location explorer
		apiV1.POST("/locations/scores", locationHandler.Scores)
		apiV1.POST("/locations/districts", locationHandler.Districts)

		// AI chat assistant
		apiV1.POST("/chat", chatHandler.Ask)
		apiV1.POST("/chat/reset", chatHandler.Reset)

		// Profile and direct messages
		apiV1.GET("/profile", profileHandler.Get)
		apiV1.PUT("/profile", profileHandler.Save)
		apiV1.POST("/messages", profileHandler.SendMessage)
		apiV1.GET("/messages", profileHandler.Messages)

		// Roommate matching
		apiV1.POST("/roommates/match", roommateHandler.Match)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
