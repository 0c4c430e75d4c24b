package retrieval

import (
	"context"
	"sort"
	"time"

	classroomRepo "school-assistant/internal/classroom/repository"
	"school-assistant/internal/extract"
	"school-assistant/internal/model"
)

// courses lists the caller's courses, filtered to the relevant grade. If the
// grade filter would drop every course the unfiltered list is used: course
// names are free text and a miss there must not read as "no data".
func (o *Orchestrator) courses(ctx context.Context, req Request) ([]model.Course, error) {
	if o.deps.Classroom == nil {
		return nil, ErrSourceUnavailable
	}

	opt := classroomRepo.ListCoursesOptions{}
	if req.Caller.Authenticated {
		opt.UserID = req.Caller.UserID
	}
	all, err := o.deps.Classroom.ListCourses(ctx, opt)
	if err != nil {
		return nil, err
	}

	grade := gradeFilter(req)
	if grade == nil || len(all) == 0 {
		return all, nil
	}

	filtered := make([]model.Course, 0, len(all))
	for _, c := range all {
		if g := courseGrade(c); g != nil && *g == *grade {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		o.l.Warnf(ctx, "%s: grade %d matched none of %d course names, filter skipped",
			LogPrefixCourses, *grade, len(all))
		return all, nil
	}
	return filtered, nil
}

// gradeFilter is the grade named in the utterance, else a student's own grade.
func gradeFilter(req Request) *int {
	if g := req.Intent.Entities.Grade; g != nil {
		return g
	}
	if req.Caller.IsStudent() && req.Caller.GradeLabel != "" {
		return extract.NormalizeGradeLabel(req.Caller.GradeLabel)
	}
	return nil
}

func courseGrade(c model.Course) *int {
	if g := extract.Grade(c.Name); g != nil {
		return g
	}
	if g := extract.NormalizeGradeLabel(c.Section); g != nil {
		return g
	}
	return extract.NormalizeGradeLabel(c.Name)
}

func courseIDs(courses []model.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func subjectCourses(courses []model.Course, codes []string) map[string]bool {
	out := make(map[string]bool, len(courses))
	if len(codes) == 0 {
		return out
	}
	for _, c := range courses {
		if extract.MatchesSubject(c.Name+" "+c.Section, codes) {
			out[c.ID] = true
		}
	}
	return out
}

// project keeps only the course fields every structured answer needs.
func project(c model.Course) model.Course {
	return model.Course{ID: c.ID, Name: c.Name, Section: c.Section}
}

func boundingRange(ranges []model.DateRange) (*time.Time, *time.Time) {
	if len(ranges) == 0 {
		return nil, nil
	}
	from, to := ranges[0].Start, ranges[0].End
	for _, r := range ranges[1:] {
		if r.Start.Before(from) {
			from = r.Start
		}
		if r.End.After(to) {
			to = r.End
		}
	}
	return &from, &to
}

func inRanges(t time.Time, ranges []model.DateRange) bool {
	if len(ranges) == 0 {
		return true
	}
	for _, r := range ranges {
		if r.Contains(t) {
			return true
		}
	}
	return false
}

func overlapsRanges(start, end time.Time, ranges []model.DateRange) bool {
	if len(ranges) == 0 {
		return true
	}
	for _, r := range ranges {
		if r.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func itemCap(latest *int, def int) int {
	if latest != nil && *latest > 0 {
		return *latest
	}
	return def
}

func courseworkDate(cw model.Coursework) time.Time {
	if cw.DueAt != nil {
		return *cw.DueAt
	}
	return cw.CreatedAt
}

func (o *Orchestrator) coursework(ctx context.Context, req Request) (*section, error) {
	sec := &section{source: model.SourceCoursework}
	courses, err := o.courses(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return sec, nil
	}

	ents := req.Intent.Entities
	workType := req.Intent.WorkType
	if workType == model.WorkTypeAny {
		workType = ents.WorkTypeFilter
	}
	opt := classroomRepo.ListCourseworkOptions{
		CourseIDs: courseIDs(courses),
		WorkType:  workType,
		Limit:     o.cfg.FetchLimit,
	}
	opt.From, opt.To = boundingRange(ents.DateRanges)

	items, err := o.deps.Classroom.ListCoursework(ctx, opt)
	if err != nil {
		return nil, err
	}

	bySubject := subjectCourses(courses, ents.SubjectCodes)
	kept := make([]model.Coursework, 0, len(items))
	for _, cw := range items {
		if !inRanges(courseworkDate(cw), ents.DateRanges) {
			continue
		}
		if ents.HasSubject() && !bySubject[cw.CourseID] && !extract.MatchesSubject(cw.Title, ents.SubjectCodes) {
			continue
		}
		kept = append(kept, cw)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return courseworkDate(kept[i]).After(courseworkDate(kept[j]))
	})
	if n := itemCap(ents.LatestCount, o.cfg.CourseworkCap); len(kept) > n {
		kept = kept[:n]
	}

	if req.Caller.IsStudent() && req.Caller.UserID != "" && len(kept) > 0 {
		o.attachSubmissions(ctx, req.Caller.UserID, kept)
	}

	sec.courses = nest(courses, len(kept), func(i int) string { return kept[i].CourseID },
		func(c *model.Course, i int) { c.Coursework = append(c.Coursework, kept[i]) })
	return sec, nil
}

// attachSubmissions is best effort: coursework without submission state is
// still worth answering with.
func (o *Orchestrator) attachSubmissions(ctx context.Context, userID string, items []model.Coursework) {
	ids := make([]string, 0, len(items))
	for _, cw := range items {
		ids = append(ids, cw.ID)
	}
	subs, err := o.deps.Classroom.ListSubmissions(ctx, classroomRepo.ListSubmissionsOptions{
		UserID:        userID,
		CourseworkIDs: ids,
	})
	if err != nil {
		o.l.Warnf(ctx, "%s: submissions unavailable: %v", LogPrefixCourses, err)
		o.metrics.SourceFailure(string(model.SourceSubmissions))
		return
	}
	byID := make(map[string]model.Submission, len(subs))
	for _, s := range subs {
		byID[s.CourseworkID] = s
	}
	for i := range items {
		if s, ok := byID[items[i].ID]; ok {
			items[i].Submission = &s
		}
	}
}

func (o *Orchestrator) announcements(ctx context.Context, req Request) (*section, error) {
	sec := &section{source: model.SourceAnnouncements}
	courses, err := o.courses(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return sec, nil
	}

	ents := req.Intent.Entities
	opt := classroomRepo.ListAnnouncementsOptions{
		CourseIDs: courseIDs(courses),
		Limit:     o.cfg.FetchLimit,
	}
	opt.From, opt.To = boundingRange(ents.DateRanges)

	items, err := o.deps.Classroom.ListAnnouncements(ctx, opt)
	if err != nil {
		return nil, err
	}

	bySubject := subjectCourses(courses, ents.SubjectCodes)
	kept := make([]model.Announcement, 0, len(items))
	for _, a := range items {
		if !inRanges(a.CreatedAt, ents.DateRanges) {
			continue
		}
		if ents.HasSubject() && !bySubject[a.CourseID] && !extract.MatchesSubject(a.Text, ents.SubjectCodes) {
			continue
		}
		kept = append(kept, a)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].CreatedAt.After(kept[j].CreatedAt) })
	if n := itemCap(ents.LatestCount, o.cfg.AnnouncementCap); len(kept) > n {
		kept = kept[:n]
	}

	sec.courses = nest(courses, len(kept), func(i int) string { return kept[i].CourseID },
		func(c *model.Course, i int) { c.Announcements = append(c.Announcements, kept[i]) })
	return sec, nil
}

func (o *Orchestrator) members(ctx context.Context, req Request) (*section, error) {
	sec := &section{source: model.SourceMembers}
	courses, err := o.courses(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return sec, nil
	}

	ents := req.Intent.Entities
	if ents.HasSubject() {
		bySubject := subjectCourses(courses, ents.SubjectCodes)
		matched := courses[:0:0]
		for _, c := range courses {
			if bySubject[c.ID] {
				matched = append(matched, c)
			}
		}
		courses = matched
		if len(courses) == 0 {
			return sec, nil
		}
	}

	role := model.RoleStudent
	if req.Intent.RosterTarget == model.RosterTeachers {
		role = model.RoleTeacher
	}
	people, err := o.deps.Classroom.ListMembers(ctx, classroomRepo.ListMembersOptions{
		CourseIDs: courseIDs(courses),
		Role:      role,
	})
	if err != nil {
		return nil, err
	}

	perCourse := make(map[string]int, len(courses))
	kept := make([]model.Person, 0, len(people))
	for _, p := range people {
		if perCourse[p.CourseID] >= o.cfg.MemberCap {
			continue
		}
		perCourse[p.CourseID]++
		kept = append(kept, p)
	}

	sec.courses = nest(courses, len(kept), func(i int) string { return kept[i].CourseID },
		func(c *model.Course, i int) {
			if role == model.RoleTeacher {
				c.Teachers = append(c.Teachers, kept[i])
			} else {
				c.Students = append(c.Students, kept[i])
			}
		})
	return sec, nil
}

// nest attaches n items to their projected courses. Courses appear in the
// order of their first item; courses without items are dropped.
func nest(courses []model.Course, n int, courseOf func(i int) string, attach func(c *model.Course, i int)) []model.Course {
	byID := make(map[string]model.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	index := make(map[string]int)
	var out []model.Course
	for i := 0; i < n; i++ {
		id := courseOf(i)
		pos, ok := index[id]
		if !ok {
			c, known := byID[id]
			if !known {
				continue
			}
			pos = len(out)
			index[id] = pos
			out = append(out, project(c))
		}
		attach(&out[pos], i)
	}
	return out
}
