package repository

import "regexp"

// Ordered: the first matching kind wins.
var kindPatterns = []struct {
	kind string
	re   *regexp.Regexp
}{
	{KindDatesheet, regexp.MustCompile(`\bdate ?sheets?\b`)},
	{KindTimetable, regexp.MustCompile(`\b(?:time ?tables?|timetabel|schedule|shedule)\b`)},
	{KindSyllabus, regexp.MustCompile(`\bsyllabus\b`)},
	{KindSamplePaper, regexp.MustCompile(`\b(?:sample|model|practice) papers?\b`)},
	{KindQuestionPaper, regexp.MustCompile(`\b(?:question papers?|previous year|pyq)\b`)},
	{KindResult, regexp.MustCompile(`\b(?:results?|marks ?sheet)\b`)},
}

// KindOf returns the document kind named in normalized text, or "".
func KindOf(normalized string) string {
	for _, p := range kindPatterns {
		if p.re.MatchString(normalized) {
			return p.kind
		}
	}
	return ""
}
