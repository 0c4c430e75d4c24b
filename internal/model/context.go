package model

import "time"

// Source identifies a retrieval source.
type Source string

const (
	SourceCourses       Source = "courses"
	SourceMembers       Source = "members"
	SourceCoursework    Source = "coursework"
	SourceSubmissions   Source = "submissions"
	SourceAnnouncements Source = "announcements"
	SourceEvents        Source = "events"
	SourceHolidays      Source = "holidays"
	SourceContent       Source = "content"
	SourceExams         Source = "exams"
)

// CandidateKind tells the renderer how to label a candidate.
type CandidateKind string

const (
	CandidateCoursework   CandidateKind = "coursework"
	CandidateAnnouncement CandidateKind = "announcement"
	CandidateEvent        CandidateKind = "event"
	CandidatePerson       CandidateKind = "person"
)

// Candidate is a record the answer may legitimately cite.
type Candidate struct {
	Title       string
	Description string
	Date        *time.Time
	Link        string
	Kind        CandidateKind
	Course      string
}

// Context is the retrieved material handed to the prompt assembler.
// It is built once per request by the retrieval orchestrator.
type Context struct {
	Courses    []Course        `json:"courses,omitempty"`
	Events     []Event         `json:"events,omitempty"`
	Web        []ContentRecord `json:"web,omitempty"`
	WebHint    string          `json:"web_hint,omitempty"`
	Exams      []ExamDocument  `json:"exams,omitempty"`
	Candidates []Candidate     `json:"-"`

	Omitted []Source `json:"-"`
	size    int
}

// NewContext wraps the pieces into a Context of the given size.
func NewContext(c Context, size int) Context {
	c.size = size
	return c
}

// Size is the estimated token size of the serialized context.
func (c Context) Size() int {
	return c.size
}

// Empty reports whether nothing was retrieved.
func (c Context) Empty() bool {
	return len(c.Courses) == 0 && len(c.Events) == 0 && len(c.Web) == 0 &&
		len(c.Exams) == 0 && c.WebHint == ""
}

// HasStructured reports whether any structured-store records are present.
func (c Context) HasStructured() bool {
	return len(c.Courses) > 0 || len(c.Events) > 0
}
