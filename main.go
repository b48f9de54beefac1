// main.go
package main

import (
	"log"

	"movies-api/cmd"
	"movies-api/internal/data/repository"
	"movies-api/internal/data/seed"
	"movies-api/internal/wire"
	"movies-api/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.Strings("cors_origins", config.CORS.AllowedOrigins),
	)

	// Load seed movies
	movies, err := seed.Load(config.Seed.Path)
	if err != nil {
		logger.Fatal("Failed to load seed movies", zap.Error(err), zap.String("path", config.Seed.Path))
	}

	logger.Info("Seed movies loaded", zap.Int("count", len(movies)))

	repos := repository.NewRepository(movies, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
