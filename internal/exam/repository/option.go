package repository

// Document kinds recognised from file and folder names.
const (
	KindTimetable     = "timetable"
	KindDatesheet     = "datesheet"
	KindSyllabus      = "syllabus"
	KindQuestionPaper = "question_paper"
	KindSamplePaper   = "sample_paper"
	KindResult        = "result"
)

// SearchOptions narrows the exam documents. Empty fields match everything;
// documents without grade metadata match any grade.
type SearchOptions struct {
	Grade   *int
	Subject string // canonical subject code
	Teacher string
	Kind    string
	Limit   int
}
