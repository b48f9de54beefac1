package adaptor

import (
	"errors"
	"net/http"

	"movies-api/internal/data/repository"
	"movies-api/internal/usecase"
	"movies-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgMovieNotFound = "movie not found"
	msgMovieDeleted  = "movie deleted"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies?genre=<name>
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")

	movies, err := h.service.GetMovies(r.Context(), genre)
	if err != nil {
		h.handleServiceError(w, err, "get movies", http.StatusNotFound)
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID", http.StatusNotFound)
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	body, err := utils.ReadJSON(w, r)
	if err != nil {
		h.log.Warn("Invalid request body", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), body)
	if err != nil {
		h.handleServiceError(w, err, "create movie", http.StatusBadRequest)
		return
	}

	utils.ResponseCreated(w, movie)
}

// UpdateMovie handles PATCH /movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	body, err := utils.ReadJSON(w, r)
	if err != nil {
		h.log.Warn("Invalid request body", zap.Error(err), zap.String("movie_id", movieID))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, body)
	if err != nil {
		h.handleServiceError(w, err, "update movie", http.StatusBadRequest)
		return
	}

	utils.ResponseSuccess(w, movie)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		h.handleServiceError(w, err, "delete movie", http.StatusBadRequest)
		return
	}

	utils.ResponseMessage(w, http.StatusOK, msgMovieDeleted)
}

// handleServiceError maps service errors to responses. notFoundStatus is the
// status used when the movie does not exist, which differs per route.
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string, notFoundStatus int) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.ResponseValidationError(w, validationErr.Fields)

	case errors.Is(err, repository.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseMessage(w, notFoundStatus, msgMovieNotFound)

	case errors.Is(err, repository.ErrMovieAlreadyExists):
		h.log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
