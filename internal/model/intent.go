package model

import "time"

// Category is the high-level kind of question being asked.
type Category string

const (
	CategoryGreeting              Category = "GREETING"
	CategoryHomeworkHelpNoSubject Category = "HOMEWORK_HELP_NO_SUBJECT"
	CategoryCoursework            Category = "COURSEWORK_QUERY"
	CategoryAnnouncement          Category = "ANNOUNCEMENT_QUERY"
	CategoryRoster                Category = "ROSTER_QUERY"
	CategoryCalendar              Category = "CALENDAR_QUERY"
	CategoryExamSchedule          Category = "EXAM_SCHEDULE_QUERY"
	CategoryPersonLookup          Category = "PERSON_LOOKUP_QUERY"
	CategoryStaticFAQ             Category = "STATIC_FAQ_QUERY"
	CategoryVideo                 Category = "VIDEO_REQUEST"
	CategoryTranslation           Category = "TRANSLATION_OF_PRIOR_ANSWER"
	CategoryGeneral               Category = "GENERAL_QUERY"
)

// IsDataGrounded reports whether answers for c must be verified against
// structured candidates.
func (c Category) IsDataGrounded() bool {
	switch c {
	case CategoryCoursework, CategoryAnnouncement, CategoryCalendar, CategoryRoster:
		return true
	}
	return false
}

// WorkType narrows coursework queries.
type WorkType string

const (
	WorkTypeAny        WorkType = ""
	WorkTypeAssignment WorkType = "ASSIGNMENT"
	WorkTypeQuiz       WorkType = "QUIZ"
	WorkTypeMaterial   WorkType = "MATERIAL"
	WorkTypeQuestion   WorkType = "QUESTION"
)

// RosterTarget selects which members a roster query lists.
type RosterTarget string

const (
	RosterStudents RosterTarget = "student"
	RosterTeachers RosterTarget = "teacher"
)

// CalendarTarget selects holidays or regular events.
type CalendarTarget string

const (
	CalendarEvents   CalendarTarget = "event"
	CalendarHolidays CalendarTarget = "holiday"
)

// FAQTopic names a canned answer.
type FAQTopic string

const (
	FAQFees             FAQTopic = "fees"
	FAQAdmission        FAQTopic = "admission"
	FAQLocation         FAQTopic = "location"
	FAQTimings          FAQTopic = "timings"
	FAQContact          FAQTopic = "contact"
	FAQUniform          FAQTopic = "uniform"
	FAQTransport        FAQTopic = "transport"
	FAQAcademicCalendar FAQTopic = "academic_calendar"
)

// DateRange is an inclusive full-day interval in the reference timezone.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside r.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Overlaps reports whether [start, end] intersects r.
func (r DateRange) Overlaps(start, end time.Time) bool {
	if end.IsZero() {
		end = start
	}
	return !end.Before(r.Start) && !start.After(r.End)
}

// EntitySet holds everything extracted from the utterance.
// Nil or empty fields mean unconstrained.
type EntitySet struct {
	DateRanges     []DateRange
	SubjectCodes   []string
	Grade          *int
	PersonName     string
	WorkTypeFilter WorkType
	LatestCount    *int
}

// HasSubject reports whether at least one subject was recognised.
func (e EntitySet) HasSubject() bool {
	return len(e.SubjectCodes) > 0
}

// Intent is the classification result for one utterance.
type Intent struct {
	Category       Category
	WorkType       WorkType
	RosterTarget   RosterTarget
	CalendarTarget CalendarTarget
	FAQTopic       FAQTopic
	TargetLanguage string
	Entities       EntitySet
}
