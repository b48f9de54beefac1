package usecase

import (
	"movies-api/pkg/utils"
)

// ValidationError carries every field problem found in a request body.
type ValidationError struct {
	Fields []utils.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}
