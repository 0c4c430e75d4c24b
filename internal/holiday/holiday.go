package holiday

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"school-assistant/internal/model"
	"school-assistant/pkg/gcalendar"
)

func (s *implSource) Holidays(ctx context.Context, from, to time.Time) ([]model.Event, error) {
	if to.Before(from) {
		from, to = to, from
	}

	var out []model.Event
	for year := from.In(s.loc).Year(); year <= to.In(s.loc).Year(); year++ {
		events, err := s.year(ctx, year)
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			if !ev.EndAt.Before(from) && !ev.StartAt.After(to) {
				out = append(out, ev)
			}
		}
	}
	return out, nil
}

func (s *implSource) year(ctx context.Context, year int) ([]model.Event, error) {
	if events, ok := s.years.Get(year); ok {
		return events, nil
	}

	// The shared fetch outlives any one caller, so a cancelled request does
	// not fail the others waiting on it.
	ch := s.group.DoChan(strconv.Itoa(year), func() (any, error) {
		if events, ok := s.years.Get(year); ok {
			return events, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		events, err := s.fetch(fetchCtx, year)
		if err != nil {
			return nil, err
		}
		s.years.Add(year, events)
		return events, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrFailedToFetch, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			s.l.Warnf(ctx, "%s: year=%d: %v", LogPrefixHolidays, year, res.Err)
			return nil, fmt.Errorf("%w: %v", ErrFailedToFetch, res.Err)
		}
		return res.Val.([]model.Event), nil
	}
}

func (s *implSource) fetch(ctx context.Context, year int) ([]model.Event, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, s.loc)
	items, err := s.lister.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: s.calendarID,
		TimeMin:    start,
		TimeMax:    start.AddDate(1, 0, 0).Add(-time.Second),
		MaxResults: maxEventsPerYear,
		Location:   s.loc,
	})
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(items))
	for _, it := range items {
		events = append(events, model.Event{
			ID:          it.ID,
			Title:       it.Summary,
			Description: it.Description,
			Location:    it.Location,
			StartAt:     it.StartTime,
			EndAt:       it.EndTime,
			Link:        it.HtmlLink,
			IsHoliday:   true,
		})
	}
	s.l.Infof(ctx, "%s: cached %d holidays for %d", LogPrefixHolidays, len(events), year)
	return events, nil
}
