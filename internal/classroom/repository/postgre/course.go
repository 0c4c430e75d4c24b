package postgre

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"school-assistant/internal/classroom/repository"
	"school-assistant/internal/model"
)

func (r *implRepository) ListCourses(ctx context.Context, opt repository.ListCoursesOptions) ([]model.Course, error) {
	query, args, err := r.buildListCoursesQuery(opt).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCourses"), err)
		return nil, repository.ErrFailedToBuild
	}

	var courses []model.Course
	if err := pgxscan.Select(ctx, r.db, &courses, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCourses"), err)
		return nil, repository.ErrFailedToList
	}
	return courses, nil
}

func (r *implRepository) ListMembers(ctx context.Context, opt repository.ListMembersOptions) ([]model.Person, error) {
	query, args, err := r.buildListMembersQuery(opt).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMembers"), err)
		return nil, repository.ErrFailedToBuild
	}

	var members []model.Person
	if err := pgxscan.Select(ctx, r.db, &members, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMembers"), err)
		return nil, repository.ErrFailedToList
	}
	return members, nil
}

func (r *implRepository) buildListCoursesQuery(opt repository.ListCoursesOptions) sq.SelectBuilder {
	b := r.sql.Select(
		"c.id",
		"c.name",
		"COALESCE(c.section, '') AS section",
		"COALESCE(c.room, '') AS room",
		"COALESCE(c.link, '') AS link",
	).From("courses c")

	if opt.UserID != "" {
		b = b.Join("course_members m ON m.course_id = c.id").Where(sq.Eq{"m.user_id": opt.UserID})
	}
	if len(opt.CourseIDs) > 0 {
		b = b.Where(sq.Eq{"c.id": opt.CourseIDs})
	}
	return b.OrderBy("c.name")
}

func (r *implRepository) buildListMembersQuery(opt repository.ListMembersOptions) sq.SelectBuilder {
	b := r.sql.Select(
		"course_id",
		"user_id",
		"full_name",
		"COALESCE(email, '') AS email",
		"role",
	).From("course_members")

	if len(opt.CourseIDs) > 0 {
		b = b.Where(sq.Eq{"course_id": opt.CourseIDs})
	}
	if opt.Role != "" {
		b = b.Where(sq.Eq{"role": string(opt.Role)})
	}
	return b.OrderBy("course_id", "full_name")
}
