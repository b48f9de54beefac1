package response

import (
	"movies-api/internal/data/entity"
)

type MovieResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Duration int      `json:"duration"`
	Rate     float64  `json:"rate"`
	Poster   string   `json:"poster"`
	Genre    []string `json:"genre"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	genres := make([]string, len(movie.Genre))
	for i, g := range movie.Genre {
		genres[i] = string(g)
	}

	return MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Year:     movie.Year,
		Duration: movie.Duration,
		Rate:     movie.Rate,
		Poster:   movie.Poster,
		Genre:    genres,
	}
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i := range movies {
		out[i] = MovieToResponse(&movies[i])
	}
	return out
}
