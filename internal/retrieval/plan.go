package retrieval

import "school-assistant/internal/model"

// planFor lists the sources an intent reads, most relevant first. When the
// budget runs out the tail of the plan is what gets dropped.
func planFor(in model.Intent) []model.Source {
	switch in.Category {
	case model.CategoryCoursework:
		return []model.Source{model.SourceCoursework}
	case model.CategoryAnnouncement:
		return []model.Source{model.SourceAnnouncements}
	case model.CategoryRoster:
		return []model.Source{model.SourceMembers}
	case model.CategoryCalendar:
		if in.CalendarTarget == model.CalendarHolidays {
			return []model.Source{model.SourceHolidays, model.SourceEvents}
		}
		return []model.Source{model.SourceEvents}
	case model.CategoryExamSchedule:
		return []model.Source{model.SourceExams, model.SourceContent}
	case model.CategoryPersonLookup, model.CategoryGeneral:
		return []model.Source{model.SourceContent}
	}
	return nil
}
