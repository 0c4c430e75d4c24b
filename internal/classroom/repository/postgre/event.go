package postgre

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"school-assistant/internal/classroom/repository"
	"school-assistant/internal/model"
)

// ListEvents returns events overlapping the requested window, earliest first.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	b := r.sql.Select(
		"id",
		"title",
		"COALESCE(description, '') AS description",
		"COALESCE(location, '') AS location",
		"start_at",
		"end_at",
		"COALESCE(link, '') AS link",
		"is_holiday",
	).From("events")

	if opt.From != nil {
		b = b.Where(sq.GtOrEq{"end_at": *opt.From})
	}
	if opt.To != nil {
		b = b.Where(sq.LtOrEq{"start_at": *opt.To})
	}
	if opt.HolidaysOnly {
		b = b.Where(sq.Eq{"is_holiday": true})
	}
	b = b.OrderBy("start_at")
	if opt.Limit > 0 {
		b = b.Limit(opt.Limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToBuild
	}

	var events []model.Event
	if err := pgxscan.Select(ctx, r.db, &events, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	return events, nil
}
