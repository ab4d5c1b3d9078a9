package main

import (
	"log"

	"github.com/AviralMathur02/echo-back/internal/router"
	"github.com/AviralMathur02/echo-back/pkg/config"
	"github.com/AviralMathur02/echo-back/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cfg.UploadDir)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
