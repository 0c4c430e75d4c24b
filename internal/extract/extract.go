package extract

import (
	"time"

	"school-assistant/internal/model"
	"school-assistant/pkg/datemath"
)

// Extractor pulls entities out of an utterance. Only date extraction needs
// state (the reference timezone); the other extractors are package functions.
type Extractor struct {
	dates *datemath.Parser
}

// New creates an Extractor that resolves dates in the parser's timezone.
func New(dates *datemath.Parser) *Extractor {
	return &Extractor{dates: dates}
}

// Extract runs every extractor over text.
func (e *Extractor) Extract(text string, now time.Time) model.EntitySet {
	return model.EntitySet{
		DateRanges:     e.Dates(text, now),
		SubjectCodes:   Subjects(text),
		Grade:          Grade(text),
		PersonName:     PersonName(text),
		WorkTypeFilter: WorkType(text),
		LatestCount:    LatestCount(text),
	}
}
