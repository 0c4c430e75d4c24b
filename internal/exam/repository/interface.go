package repository

import (
	"context"

	"school-assistant/internal/model"
)

// Reader finds exam timetables, date sheets and papers.
type Reader interface {
	Search(ctx context.Context, opt SearchOptions) ([]model.ExamDocument, error)
}
