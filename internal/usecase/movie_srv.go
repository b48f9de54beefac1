package usecase

import (
	"context"
	"fmt"

	"movies-api/internal/data/entity"
	"movies-api/internal/data/repository"
	"movies-api/internal/dto/request"
	"movies-api/internal/dto/response"
	"movies-api/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context, genre string) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, body any) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, body any) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context, genre string) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx, genre)
	if err != nil {
		s.log.Error("Failed to get movies",
			zap.Error(err),
			zap.String("genre", genre),
		)
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved",
		zap.Int("count", len(movies)),
		zap.String("genre", genre),
	)

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie by id: %w", err)
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, body any) (*response.MovieResponse, error) {
	input, errs := request.ValidateMovie(body)
	if len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	movie := input.NewMovie(utils.GenerateUUIDString())

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("genre_count", len(movie.Genre)),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, body any) (*response.MovieResponse, error) {
	// Validation runs before the lookup so a bad body on an unknown id reports the body.
	input, errs := request.ValidatePartialMovie(body)
	if len(errs) > 0 {
		s.log.Warn("Update movie validation failed",
			zap.String("movie_id", movieID),
			zap.Any("errors", errs),
		)
		return nil, &ValidationError{Fields: errs}
	}

	movie, err := s.repo.Movie.Update(ctx, movieID, func(m *entity.Movie) {
		input.Apply(m)
	})
	if err != nil {
		return nil, fmt.Errorf("update movie: %w", err)
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.Strings("fields", input.Fields()),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	if err := s.repo.Movie.Delete(ctx, movieID); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))

	return nil
}
