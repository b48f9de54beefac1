package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"movies-api/internal/data/entity"

	"go.uber.org/zap"
)

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrMovieAlreadyExists = errors.New("movie already exists")
)

type MovieRepository interface {
	// FindAll returns every movie in insertion order. A non-empty genre keeps
	// only movies listing that genre, compared case-insensitively.
	FindAll(ctx context.Context, genre string) ([]entity.Movie, error)
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	Create(ctx context.Context, movie *entity.Movie) error
	// Update runs apply on the stored movie in place. The id cannot be changed.
	Update(ctx context.Context, id string, apply func(movie *entity.Movie)) (*entity.Movie, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
}

// movieRepository keeps movies in an ordered slice. Every method copies
// movies in and out so callers never alias stored records.
type movieRepository struct {
	mu     sync.RWMutex
	movies []entity.Movie
	log    *zap.Logger
}

func NewMovieRepository(seed []entity.Movie, log *zap.Logger) MovieRepository {
	movies := make([]entity.Movie, len(seed))
	for i := range seed {
		movies[i] = seed[i].Clone()
	}

	return &movieRepository{
		movies: movies,
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindAll(ctx context.Context, genre string) ([]entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]entity.Movie, 0, len(r.movies))
	for i := range r.movies {
		if genre != "" && !r.movies[i].HasGenre(genre) {
			continue
		}
		movies = append(movies, r.movies[i].Clone())
	}

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrMovieNotFound
	}

	movie := r.movies[idx].Clone()
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(movie.ID) >= 0 {
		r.log.Warn("Duplicate movie id", zap.String("movie_id", movie.ID))
		return ErrMovieAlreadyExists
	}

	r.movies = append(r.movies, movie.Clone())
	return nil
}

func (r *movieRepository) Update(ctx context.Context, id string, apply func(movie *entity.Movie)) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrMovieNotFound
	}

	updated := r.movies[idx].Clone()
	apply(&updated)
	updated.ID = id
	r.movies[idx] = updated

	result := updated.Clone()
	return &result, nil
}

func (r *movieRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrMovieNotFound
	}

	r.movies = slices.Delete(r.movies, idx, idx+1)
	return nil
}

func (r *movieRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.movies)
}

// indexOf must be called with r.mu held.
func (r *movieRepository) indexOf(id string) int {
	return slices.IndexFunc(r.movies, func(m entity.Movie) bool {
		return m.ID == id
	})
}
