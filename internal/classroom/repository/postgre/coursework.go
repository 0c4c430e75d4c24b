package postgre

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"school-assistant/internal/classroom/repository"
	"school-assistant/internal/model"
)

const courseworkDate = "COALESCE(due_at, created_at)"

func (r *implRepository) ListCoursework(ctx context.Context, opt repository.ListCourseworkOptions) ([]model.Coursework, error) {
	query, args, err := r.buildListCourseworkQuery(opt).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCoursework"), err)
		return nil, repository.ErrFailedToBuild
	}

	var items []model.Coursework
	if err := pgxscan.Select(ctx, r.db, &items, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCoursework"), err)
		return nil, repository.ErrFailedToList
	}
	return items, nil
}

func (r *implRepository) ListSubmissions(ctx context.Context, opt repository.ListSubmissionsOptions) ([]model.Submission, error) {
	if opt.UserID == "" || len(opt.CourseworkIDs) == 0 {
		return nil, nil
	}

	query, args, err := r.sql.Select(
		"coursework_id",
		"state",
		"late",
		"assigned_grade",
	).From("submissions").
		Where(sq.Eq{"user_id": opt.UserID}).
		Where(sq.Eq{"coursework_id": opt.CourseworkIDs}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSubmissions"), err)
		return nil, repository.ErrFailedToBuild
	}

	var subs []model.Submission
	if err := pgxscan.Select(ctx, r.db, &subs, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListSubmissions"), err)
		return nil, repository.ErrFailedToList
	}
	return subs, nil
}

func (r *implRepository) ListAnnouncements(ctx context.Context, opt repository.ListAnnouncementsOptions) ([]model.Announcement, error) {
	b := r.sql.Select(
		"id",
		"course_id",
		"text",
		"created_at",
		"COALESCE(link, '') AS link",
	).From("announcements")

	if len(opt.CourseIDs) > 0 {
		b = b.Where(sq.Eq{"course_id": opt.CourseIDs})
	}
	if opt.From != nil {
		b = b.Where(sq.GtOrEq{"created_at": *opt.From})
	}
	if opt.To != nil {
		b = b.Where(sq.LtOrEq{"created_at": *opt.To})
	}
	b = b.OrderBy("created_at DESC")
	if opt.Limit > 0 {
		b = b.Limit(opt.Limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAnnouncements"), err)
		return nil, repository.ErrFailedToBuild
	}

	var items []model.Announcement
	if err := pgxscan.Select(ctx, r.db, &items, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAnnouncements"), err)
		return nil, repository.ErrFailedToList
	}
	return items, nil
}

func (r *implRepository) buildListCourseworkQuery(opt repository.ListCourseworkOptions) sq.SelectBuilder {
	b := r.sql.Select(
		"id",
		"course_id",
		"title",
		"COALESCE(description, '') AS description",
		"work_type",
		"due_at",
		"created_at",
		"COALESCE(link, '') AS link",
		"max_points",
	).From("coursework")

	if len(opt.CourseIDs) > 0 {
		b = b.Where(sq.Eq{"course_id": opt.CourseIDs})
	}
	if opt.WorkType != model.WorkTypeAny {
		b = b.Where(sq.Eq{"work_type": string(opt.WorkType)})
	}
	if opt.From != nil {
		b = b.Where(sq.Expr(courseworkDate+" >= ?", *opt.From))
	}
	if opt.To != nil {
		b = b.Where(sq.Expr(courseworkDate+" <= ?", *opt.To))
	}
	b = b.OrderBy(courseworkDate + " DESC")
	if opt.Limit > 0 {
		b = b.Limit(opt.Limit)
	}
	return b
}
