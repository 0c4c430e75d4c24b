package retrieval

import (
	"context"
	"sort"
	"time"

	classroomRepo "school-assistant/internal/classroom/repository"
	"school-assistant/internal/model"
)

// window is the date ranges asked about, or [today, today+lookahead].
func (o *Orchestrator) window(req Request, lookahead time.Duration) []model.DateRange {
	if ranges := req.Intent.Entities.DateRanges; len(ranges) > 0 {
		return ranges
	}
	start := o.dates.StartOfDay(req.Now)
	end := o.dates.EndOfDay(o.dates.StartOfDay(req.Now.Add(lookahead)))
	return []model.DateRange{{Start: start, End: end}}
}

func (o *Orchestrator) events(ctx context.Context, req Request) (*section, error) {
	if o.deps.Classroom == nil {
		return nil, ErrSourceUnavailable
	}
	ranges := o.window(req, o.cfg.EventLookahead)
	from, to := boundingRange(ranges)

	items, err := o.deps.Classroom.ListEvents(ctx, classroomRepo.ListEventsOptions{
		From:         from,
		To:           to,
		HolidaysOnly: req.Intent.CalendarTarget == model.CalendarHolidays,
		Limit:        o.cfg.FetchLimit,
	})
	if err != nil {
		return nil, err
	}
	return &section{source: model.SourceEvents, events: o.selectEvents(items, ranges)}, nil
}

func (o *Orchestrator) holidays(ctx context.Context, req Request) (*section, error) {
	if o.deps.Holidays == nil {
		return nil, ErrSourceUnavailable
	}
	ranges := o.window(req, o.cfg.HolidayLookahead)
	from, to := boundingRange(ranges)

	items, err := o.deps.Holidays.Holidays(ctx, *from, *to)
	if err != nil {
		return nil, err
	}
	return &section{source: model.SourceHolidays, events: o.selectEvents(items, ranges)}, nil
}

// selectEvents keeps events overlapping any range, soonest first.
func (o *Orchestrator) selectEvents(items []model.Event, ranges []model.DateRange) []model.Event {
	kept := make([]model.Event, 0, len(items))
	for _, ev := range items {
		if overlapsRanges(ev.StartAt, ev.EndAt, ranges) {
			kept = append(kept, ev)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].StartAt.Before(kept[j].StartAt) })
	if len(kept) > o.cfg.EventCap {
		kept = kept[:o.cfg.EventCap]
	}
	return kept
}
