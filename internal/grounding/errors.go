package grounding

import "errors"

// ErrGroundingViolation means model text cited something not in the candidates.
var ErrGroundingViolation = errors.New("grounding violation")
