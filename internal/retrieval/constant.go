package retrieval

import (
	"regexp"
	"time"
)

// Log prefixes
const (
	LogPrefixRetrieve = "internal.retrieval.Retrieve"
	LogPrefixCourses  = "internal.retrieval.courses"
	LogPrefixAssemble = "internal.retrieval.assemble"
)

// Defaults
const (
	DefaultBudgetTokens     = 3000
	DefaultSourceTimeout    = 5 * time.Second
	DefaultWebTokens        = 600
	DefaultPersonWebTokens  = 1500
	DefaultCourseworkCap    = 15
	DefaultAnnouncementCap  = 10
	DefaultEventCap         = 20
	DefaultMemberCap        = 60
	DefaultExamCap          = 3
	DefaultFetchLimit       = 100
	DefaultEventLookahead   = 30 * 24 * time.Hour
	DefaultHolidayLookahead = 120 * 24 * time.Hour

	maxTopics      = 2
	webRecordLimit = 6
	defaultTopic   = "about"
	peopleTopic    = "people"
	truncateMarker = "…"
)

// Ranked: earlier topics are preferred when more than two match.
var topicTable = []struct {
	topic string
	re    *regexp.Regexp
}{
	{peopleTopic, regexp.MustCompile(`\b(?:principal|director|founder|chairman|chairperson|staff|faculty|coordinator|headmaster|headmistress|management|trustees?)\b`)},
	{"admissions", regexp.MustCompile(`\b(?:admissions?|enrol(?:l)?(?:ment)?|eligibility|apply|application|age criteria)\b`)},
	{"academics", regexp.MustCompile(`\b(?:curriculum|syllabus|subjects?|academics?|board|cbse|icse|streams?|exams?|results?|toppers?)\b`)},
	{"facilities", regexp.MustCompile(`\b(?:facilities|facility|library|labs?|laboratory|playground|auditorium|canteen|hostel|infrastructure|campus|smart ?class(?:es)?)\b`)},
	{"activities", regexp.MustCompile(`\b(?:activities|clubs?|competitions?|annual day|sports day|trips?|celebrations?|fest|sports)\b`)},
	{"achievements", regexp.MustCompile(`\b(?:achievements?|awards?|ranks?|medals?|won|winners?|accolades?)\b`)},
	{"news", regexp.MustCompile(`\b(?:news|articles?|blogs?|stories|story|press|updates?)\b`)},
	{defaultTopic, regexp.MustCompile(`\b(?:about|history|vision|mission|founded|established|motto|values|principles)\b`)},
}

var teacherNameRe = regexp.MustCompile(`\b(?:mr|mrs|ms|miss|dr|sir|madam)\.?\s+([a-z]+)`)

var keywordStopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "was": true, "what": true,
	"when": true, "where": true, "who": true, "why": true, "how": true, "can": true,
	"you": true, "your": true, "our": true, "about": true, "tell": true, "please": true,
	"does": true, "did": true, "have": true, "has": true, "there": true, "this": true,
	"that": true, "with": true, "from": true, "school": true, "give": true, "show": true,
	"some": true, "any": true, "all": true, "know": true, "want": true, "need": true,
}
