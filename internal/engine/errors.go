package engine

import "errors"

var (
	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrNothingToDo indicates a request that names nothing to create.
	ErrNothingToDo = errors.New("nothing to do")
)
