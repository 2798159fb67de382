package main

import (
	"fmt"
	"log"

	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/config"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/database"
	"github.com/adityarajtiwari/qdc-clean-canvas-care/internal/migrations"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Recreate schema and seed the default catalog
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialized successfully!")
}
