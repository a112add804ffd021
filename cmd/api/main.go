package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"nuclear-lcoe/internal/api/handlers"
	"nuclear-lcoe/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Log the scenario directory so misconfigured deployments are
	// easy to diagnose.
	wd, err := os.Getwd()
	if err == nil {
		scenarioDir := os.Getenv("SCENARIO_DIR")
		if scenarioDir == "" {
			scenarioDir = filepath.Join(wd, "examples", "scenarios")
		}
		if info, err := os.Stat(scenarioDir); err == nil && info.IsDir() {
			log.Printf("Scenario directory found: %s", scenarioDir)
		} else {
			log.Printf("Scenario directory not found at: %s (error: %v)", scenarioDir, err)
		}
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	lcoeHandler := handlers.NewLCOEHandler()
	optimizeHandler := handlers.NewOptimizeHandler()
	scheduleHandler := handlers.NewScheduleHandler()
	scenarioHandler := handlers.NewScenarioHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/lcoe", lcoeHandler.Run)
		api.POST("/lcoe/fuel-breakdown", lcoeHandler.FuelBreakdown)

		api.POST("/frontend/optimize", optimizeHandler.Optimize)
		api.POST("/schedule", scheduleHandler.Schedule)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
