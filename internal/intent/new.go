package intent

import (
	"context"
	"time"

	"school-assistant/internal/extract"
	"school-assistant/internal/model"
	"school-assistant/pkg/log"
)

// Classifier maps an utterance to exactly one Intent.
type Classifier interface {
	Classify(ctx context.Context, utterance string) model.Intent
}

// RuleClassifier evaluates an ordered decision table; the first matching rule wins.
type RuleClassifier struct {
	extractor *extract.Extractor
	rules     []rule
	now       func() time.Time
	l         log.Logger
}

var _ Classifier = (*RuleClassifier)(nil)

// New creates a RuleClassifier.
func New(extractor *extract.Extractor, l log.Logger) *RuleClassifier {
	return &RuleClassifier{
		extractor: extractor,
		rules:     defaultRules(),
		now:       time.Now,
		l:         l,
	}
}

// WithClock overrides the clock used to resolve relative dates.
func (c *RuleClassifier) WithClock(now func() time.Time) *RuleClassifier {
	c.now = now
	return c
}
