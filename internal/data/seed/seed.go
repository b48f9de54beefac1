// Package seed loads the movies the store starts with.
package seed

import (
	_ "embed"
	"fmt"
	"os"

	"movies-api/internal/data/entity"
	"movies-api/internal/dto/request"
	"movies-api/pkg/utils"

	"github.com/goccy/go-json"
)

//go:embed movies.json
var defaultMovies []byte

// Load reads the seed file at path, or the embedded seed when path is empty.
func Load(path string) ([]entity.Movie, error) {
	if path == "" {
		return Parse(defaultMovies)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON array of movies. Every entry must carry a unique id
// and pass full movie validation.
func Parse(data []byte) ([]entity.Movie, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	movies := make([]entity.Movie, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i, obj := range raw {
		id, _ := obj["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("seed movie %d: missing id", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("seed movie %d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}

		input, errs := request.ValidateMovie(obj)
		if len(errs) > 0 {
			return nil, fmt.Errorf("seed movie %d (%s): %s", i, id, utils.FormatValidationErrors(errs))
		}

		movies = append(movies, *input.NewMovie(id))
	}

	return movies, nil
}
