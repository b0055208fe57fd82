package main

import (
	"fmt"
	"log"
	"os"

	"battery-value/internal/api/handlers"
	"battery-value/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	scenarioHandler := handlers.NewScenarioHandler()
	batteryHandler := handlers.NewBatteryHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/calculate/homeowner", scenarioHandler.CalculateHomeowner)
		api.POST("/calculate/yearly", scenarioHandler.CalculateYearly)
		api.POST("/calculate/rep", scenarioHandler.CalculateREP)
		api.POST("/calculate/ci", scenarioHandler.CalculateCI)
		api.POST("/calculate/payback", scenarioHandler.CalculatePayback)

		api.POST("/rates/analyze", scenarioHandler.AnalyzeRates)

		api.GET("/summary", handlers.GetSummary)
		api.GET("/batteries", batteryHandler.ListBatteries)
		api.GET("/daytypes", handlers.ListDayTypes)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
