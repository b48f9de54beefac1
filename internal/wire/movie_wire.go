package wire

import (
	"movies-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)
		r.Post("/", movieHandler.CreateMovie)
		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Patch("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})
}
