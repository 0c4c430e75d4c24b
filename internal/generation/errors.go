package generation

import "errors"

var (
	// ErrGenerationIncomplete marks an attempt that was truncated or empty.
	ErrGenerationIncomplete = errors.New("generation incomplete")
	// ErrGenerationExhausted is returned once every attempt failed.
	ErrGenerationExhausted = errors.New("generation exhausted")
)
