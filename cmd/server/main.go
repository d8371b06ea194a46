package main

import (
	"corlog/internal/config"
	"corlog/internal/database"
	"corlog/internal/server"
)

// @title Correspondence Log API
// @version 1.0
// @description Normalizes pasted correspondence into structured log entries: thread detection, formatting, contact attribution and duplicate checks.
// @BasePath /
func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Initialize database connection. The server still starts without one:
	// health and formatting endpoints stay useful while saves report 503.
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Database connection failed")
		logger.Info().Msg("Starting server without database connection")
	} else {
		logger.Info().Msg("Database connection established successfully")
	}

	// Create and initialize server
	srv := server.New(cfg, db, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
