package assistant

import (
	"errors"

	"school-assistant/internal/generation"
	"school-assistant/internal/grounding"
	"school-assistant/internal/retrieval"
)

// Error taxonomy of the pipeline. None of these reach the caller; each maps
// to a terminal Response.
var (
	ErrValidationEmpty       = errors.New("utterance is empty")
	ErrAuthorizationRequired = errors.New("authorization required")
	ErrSourceUnavailable     = retrieval.ErrSourceUnavailable
	ErrGenerationIncomplete  = generation.ErrGenerationIncomplete
	ErrGenerationExhausted   = generation.ErrGenerationExhausted
	ErrGroundingViolation    = grounding.ErrGroundingViolation
)
