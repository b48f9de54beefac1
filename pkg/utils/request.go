package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1_048_576

// ReadJSON decodes a request body into an untyped value. An empty body
// decodes as an empty object so partial updates with no fields are no-ops.
func ReadJSON(w http.ResponseWriter, r *http.Request) (any, error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return nil, fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return nil, fmt.Errorf("read body: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		var syntaxError *json.SyntaxError
		if errors.As(err, &syntaxError) {
			return nil, fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		}
		return nil, errors.New("body contains badly-formed JSON")
	}

	return body, nil
}
