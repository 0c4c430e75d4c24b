package retrieval

import (
	"context"
	"time"

	"school-assistant/internal/model"
)

// Retriever gathers the context an intent needs.
type Retriever interface {
	Retrieve(ctx context.Context, req Request) (model.Context, error)
}

// Request is the input of one retrieval.
type Request struct {
	Intent            model.Intent
	Caller            model.Caller
	Utterance         string
	CachedContentHint string
	Now               time.Time
}
