package analyses

import "errors"

var (
	ErrNotFound     = errors.New("analysis not found")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeExtraction = "EXTRACTION_ERROR"
	ErrorCodeStorage    = "STORAGE_ERROR"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)
