package request

import (
	"strings"

	"movies-api/internal/data/entity"
	"movies-api/pkg/utils"
)

// DefaultRate is applied to new movies that omit "rate".
const DefaultRate = 5.5

// MovieRules is the movie schema. Partial validation reuses it with no field required.
var MovieRules = []utils.FieldRule{
	{
		Name:            "title",
		Kind:            utils.KindString,
		Required:        true,
		Tag:             "min=1",
		RequiredMessage: "El título de la pelicula es requerido.",
		TypeMessage:     "El título de la película debe ser string",
		Messages: map[string]string{
			"min": "El título de la película no puede estar vacío",
		},
	},
	{
		Name:     "year",
		Kind:     utils.KindInteger,
		Required: true,
		Tag:      "gte=1900,lte=2023",
	},
	{
		Name:     "duration",
		Kind:     utils.KindInteger,
		Required: true,
		Tag:      "gt=0",
	},
	{
		Name:    "rate",
		Kind:    utils.KindNumber,
		Tag:     "gt=0,lte=10",
		Default: DefaultRate,
	},
	{
		Name:     "poster",
		Kind:     utils.KindString,
		Required: true,
		Tag:      "url",
		Messages: map[string]string{
			"url": "Poster debe ser una URL válida",
		},
	},
	{
		Name:            "genre",
		Kind:            utils.KindStringArray,
		Required:        true,
		ElemTag:         "oneof=" + genreOptions(),
		RequiredMessage: "El género de la película es requerido.",
		TypeMessage:     "El género de la película debe ser un arreglo de valores enumerados",
	},
}

func genreOptions() string {
	names := make([]string, len(entity.Genres))
	for i, g := range entity.Genres {
		names[i] = string(g)
	}
	return strings.Join(names, " ")
}

// MovieInput holds validated movie fields. A nil field was absent from the input.
type MovieInput struct {
	Title    *string
	Year     *int
	Duration *int
	Rate     *float64
	Poster   *string
	// Genre is nil when absent; a present empty list is non-nil.
	Genre []entity.Genre
}

// ValidateMovie checks a complete movie and applies defaults.
func ValidateMovie(input any) (*MovieInput, []utils.FieldError) {
	return validateMovie(input, utils.ModeFull)
}

// ValidatePartialMovie checks only the fields present in input.
func ValidatePartialMovie(input any) (*MovieInput, []utils.FieldError) {
	return validateMovie(input, utils.ModePartial)
}

func validateMovie(input any, mode utils.ValidationMode) (*MovieInput, []utils.FieldError) {
	fields, errs := utils.ValidateFields(input, MovieRules, mode)
	if len(errs) > 0 {
		return nil, errs
	}

	in := &MovieInput{}
	if v, ok := fields["title"].(string); ok {
		in.Title = &v
	}
	if v, ok := fields["year"].(int); ok {
		in.Year = &v
	}
	if v, ok := fields["duration"].(int); ok {
		in.Duration = &v
	}
	if v, ok := fields["rate"].(float64); ok {
		in.Rate = &v
	}
	if v, ok := fields["poster"].(string); ok {
		in.Poster = &v
	}
	if v, ok := fields["genre"].([]string); ok {
		in.Genre = make([]entity.Genre, len(v))
		for i, g := range v {
			in.Genre[i] = entity.Genre(g)
		}
	}
	return in, nil
}

// NewMovie builds a movie from a fully validated input.
func (in *MovieInput) NewMovie(id string) *entity.Movie {
	movie := &entity.Movie{ID: id}
	in.Apply(movie)
	return movie
}

// Apply overwrites the fields of movie that are set in the input.
func (in *MovieInput) Apply(movie *entity.Movie) {
	if in.Title != nil {
		movie.Title = *in.Title
	}
	if in.Year != nil {
		movie.Year = *in.Year
	}
	if in.Duration != nil {
		movie.Duration = *in.Duration
	}
	if in.Rate != nil {
		movie.Rate = *in.Rate
	}
	if in.Poster != nil {
		movie.Poster = *in.Poster
	}
	if in.Genre != nil {
		movie.Genre = make([]entity.Genre, len(in.Genre))
		copy(movie.Genre, in.Genre)
	}
}

// Fields lists the names of the fields set in the input.
func (in *MovieInput) Fields() []string {
	var names []string
	if in.Title != nil {
		names = append(names, "title")
	}
	if in.Year != nil {
		names = append(names, "year")
	}
	if in.Duration != nil {
		names = append(names, "duration")
	}
	if in.Rate != nil {
		names = append(names, "rate")
	}
	if in.Poster != nil {
		names = append(names, "poster")
	}
	if in.Genre != nil {
		names = append(names, "genre")
	}
	return names
}
