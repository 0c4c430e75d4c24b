package grounding

import (
	"context"
	"time"

	"school-assistant/internal/model"
	"school-assistant/pkg/log"
)

// Config configures the verifier.
type Config struct {
	// AllowedURLs are link prefixes the model may cite without a candidate,
	// such as the school website.
	AllowedURLs []string
	Location    *time.Location
}

// Verifier checks generated answers and renders the fallback.
type Verifier struct {
	allowedURLs []string
	loc         *time.Location
	l           log.Logger
}

// New creates a Verifier.
func New(cfg Config, l log.Logger) *Verifier {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Verifier{allowedURLs: cfg.AllowedURLs, loc: cfg.Location, l: l}
}

// Finalize turns model text into the response for a data-grounded category:
// the text itself when it verifies, the deterministic render otherwise.
func (v *Verifier) Finalize(ctx context.Context, category model.Category, text string, candidates []model.Candidate) model.Response {
	if !category.IsDataGrounded() {
		return model.Response{Text: text, Outcome: model.OutcomeModelText}
	}
	if err := v.Verify(text, candidates); err != nil {
		v.l.Warnf(ctx, "%s: %v, rendering %d candidates", LogPrefixFinalize, err, len(candidates))
		return model.Response{Text: v.Render(category, candidates), Outcome: model.OutcomeFallbackRender}
	}
	return model.Response{Text: text, Outcome: model.OutcomeModelText}
}
