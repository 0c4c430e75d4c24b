package retrieval

import (
	"context"

	"school-assistant/internal/model"
)

// assemble packs the fetched sections in plan order until the budget is
// spent. A source with material of which nothing fits is reported as omitted.
func (o *Orchestrator) assemble(ctx context.Context, req Request, sections []*section) model.Context {
	b := &builder{counter: o.counter, budget: o.cfg.BudgetTokens}
	var out model.Context
	seenEvents := make(map[string]bool)

	if req.CachedContentHint != "" && hasSource(sections, model.SourceContent) {
		hint := truncateTokens(o.counter, req.CachedContentHint, o.webAllowance(req))
		if hint != "" && b.take(hint) {
			out.WebHint = hint
		}
	}

	for _, sec := range sections {
		if sec == nil || sec.empty() {
			continue
		}
		added := 0
		switch sec.source {
		case model.SourceCoursework, model.SourceAnnouncements, model.SourceMembers:
			courses := packCourses(b, sec.courses)
			out.Courses = append(out.Courses, courses...)
			added = len(courses)
		case model.SourceEvents, model.SourceHolidays:
			for _, ev := range sec.events {
				key := ev.Title + "|" + ev.StartAt.Format("2006-01-02")
				if seenEvents[key] {
					continue
				}
				if !b.take(ev) {
					break
				}
				seenEvents[key] = true
				out.Events = append(out.Events, ev)
				added++
			}
		case model.SourceContent:
			web := o.packWeb(b, req, sec.web, out.WebHint)
			out.Web = append(out.Web, web...)
			added = len(web)
		case model.SourceExams:
			for _, doc := range sec.exams {
				if !b.take(doc) {
					break
				}
				out.Exams = append(out.Exams, doc)
				added++
			}
		}
		if added == 0 {
			o.l.Infof(ctx, "%s: budget exhausted, %s omitted", LogPrefixAssemble, sec.source)
			out.Omitted = append(out.Omitted, sec.source)
		}
	}

	out.Candidates = candidates(out)
	return model.NewContext(out, b.used)
}

func hasSource(sections []*section, src model.Source) bool {
	for _, sec := range sections {
		if sec != nil && sec.source == src {
			return true
		}
	}
	return false
}

func (o *Orchestrator) webAllowance(req Request) int {
	if req.Intent.Category == model.CategoryPersonLookup {
		return o.cfg.PersonWebTokens
	}
	return o.cfg.WebTokens
}

// packWeb fills the web allowance, shortening record bodies to what is left.
func (o *Orchestrator) packWeb(b *builder, req Request, records []model.ContentRecord, hint string) []model.ContentRecord {
	allowance := o.webAllowance(req) - o.counter.Count(hint)
	var out []model.ContentRecord
	for _, rec := range records {
		if allowance <= 0 || b.remaining() <= 0 {
			break
		}
		rec.Topic = ""
		head := rec
		head.Body = ""
		headCost := b.cost(head)
		room := min(allowance, b.remaining()) - headCost
		if room < 0 {
			break
		}
		rec.Body = truncateTokens(o.counter, rec.Body, room)
		n := b.cost(rec)
		if !b.fits(n) || n > allowance {
			rec.Body = ""
			n = headCost
			if !b.fits(n) {
				break
			}
		}
		b.used += n
		allowance -= n
		out = append(out, rec)
	}
	return out
}

// packCourses adds courses with as many nested records as fit. A course is
// only added together with at least one of its records.
func packCourses(b *builder, courses []model.Course) []model.Course {
	var out []model.Course
	for _, c := range courses {
		kept := project(c)
		headCost := b.cost(kept)
		if !b.fits(headCost) {
			break
		}
		b.used += headCost
		full := false
		nested := 0

		for _, cw := range c.Coursework {
			if full = !b.take(cw); full {
				break
			}
			kept.Coursework = append(kept.Coursework, cw)
			nested++
		}
		for _, a := range c.Announcements {
			if full = full || !b.take(a); full {
				break
			}
			kept.Announcements = append(kept.Announcements, a)
			nested++
		}
		for _, p := range c.Teachers {
			if full = full || !b.take(p); full {
				break
			}
			kept.Teachers = append(kept.Teachers, p)
			nested++
		}
		for _, p := range c.Students {
			if full = full || !b.take(p); full {
				break
			}
			kept.Students = append(kept.Students, p)
			nested++
		}

		if nested == 0 {
			b.used -= headCost
			break
		}
		out = append(out, kept)
		if full {
			break
		}
	}
	return out
}
