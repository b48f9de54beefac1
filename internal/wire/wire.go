// internal/wire/wire.go
package wire

import (
	"movies-api/internal/adaptor"
	"movies-api/internal/data/repository"
	"movies-api/internal/usecase"
	"movies-api/pkg/middleware"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins, logger))
	r.Use(middleware.RateLimit(config.RateLimit.Requests, config.RateLimit.Window))

	r.NotFound(adaptor.NotFound)
	r.MethodNotAllowed(adaptor.MethodNotAllowed)

	wireMovie(r, handler.Movie)

	r.Get("/health", adaptor.NewHealthHandler(repo.Movie).Check)

	return r
}
