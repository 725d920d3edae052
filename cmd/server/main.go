package main

import (
	"net/http"
	"os"

	"github.com/BasileDS/royaume-backend/internal/api"
	"github.com/BasileDS/royaume-backend/internal/config"
	"github.com/BasileDS/royaume-backend/internal/content"
	"github.com/BasileDS/royaume-backend/internal/database"
	"github.com/BasileDS/royaume-backend/internal/gamification"
	"github.com/BasileDS/royaume-backend/internal/handler"
	"github.com/BasileDS/royaume-backend/internal/logger"
	"github.com/BasileDS/royaume-backend/internal/storage"
	"github.com/rs/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Assemble the gamification core
	ledger := storage.NewLedgerStore(db)
	aggregates := storage.NewAggregateStore(db)
	profiles := storage.NewProfileStore(db)
	thresholds := content.NewClient(cfg.DirectusURL)

	service := gamification.NewService(ledger, aggregates, profiles, thresholds)
	handler.Setup(service)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(router)); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
