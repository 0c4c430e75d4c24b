package retrieval

import (
	"strings"

	"school-assistant/internal/model"
)

// candidates lists every citable record that made it into the context, in
// context order.
func candidates(c model.Context) []model.Candidate {
	var out []model.Candidate
	for _, course := range c.Courses {
		for _, cw := range course.Coursework {
			d := courseworkDate(cw)
			out = append(out, model.Candidate{
				Title:       cw.Title,
				Description: cw.Description,
				Date:        &d,
				Link:        cw.Link,
				Kind:        model.CandidateCoursework,
				Course:      course.Name,
			})
		}
		for _, a := range course.Announcements {
			d := a.CreatedAt
			title := a.Title()
			out = append(out, model.Candidate{
				Title:       title,
				Description: strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(a.Text), title)),
				Date:        &d,
				Link:        a.Link,
				Kind:        model.CandidateAnnouncement,
				Course:      course.Name,
			})
		}
		for _, p := range append(append([]model.Person{}, course.Teachers...), course.Students...) {
			out = append(out, model.Candidate{
				Title:  p.Name,
				Kind:   model.CandidatePerson,
				Course: course.Name,
			})
		}
	}
	for _, ev := range c.Events {
		d := ev.StartAt
		out = append(out, model.Candidate{
			Title:       ev.Title,
			Description: ev.Description,
			Date:        &d,
			Link:        ev.Link,
			Kind:        model.CandidateEvent,
		})
	}
	return out
}
