package holiday

import (
	"context"
	"time"

	"school-assistant/internal/model"
	"school-assistant/pkg/gcalendar"
)

// Source returns the school holidays overlapping [from, to].
type Source interface {
	Holidays(ctx context.Context, from, to time.Time) ([]model.Event, error)
}

// Lister is the calendar API the cache reads through to.
type Lister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}
