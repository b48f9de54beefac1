package adaptor

import (
	"net/http"

	"movies-api/internal/data/repository"
	"movies-api/pkg/utils"
)

type HealthResponse struct {
	Status string `json:"status"`
	Movies int    `json:"movies"`
}

type HealthHandler struct {
	movies repository.MovieRepository
}

func NewHealthHandler(movies repository.MovieRepository) *HealthHandler {
	return &HealthHandler{movies: movies}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, HealthResponse{
		Status: "ok",
		Movies: h.movies.Count(r.Context()),
	})
}

// NotFound replaces chi's plain text 404
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "resource not found")
}

// MethodNotAllowed replaces chi's plain text 405
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMethodNotAllowed(w, "method not allowed")
}
