package extract

import "time"

const (
	minGrade = 1
	maxGrade = 12
)

var months = []struct {
	name  string
	month time.Month
}{
	{"january", time.January},
	{"february", time.February},
	{"march", time.March},
	{"april", time.April},
	{"may", time.May},
	{"june", time.June},
	{"july", time.July},
	{"august", time.August},
	{"september", time.September},
	{"october", time.October},
	{"november", time.November},
	{"december", time.December},
}

// Words that look like month names but are not.
const minFuzzyMonthLen = 5

var monthDenylist = map[string]bool{
	"marks": true, "mark": true, "marked": true, "marker": true,
	"mary": true, "marry": true, "maybe": true, "mayor": true,
	"junk": true, "junior": true, "julia": true, "julie": true,
	"novel": true, "decor": true, "augur": true, "octet": true,
}

var weekdayWords = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"mon": true, "tue": true, "tues": true, "wed": true, "thu": true, "thurs": true, "fri": true, "sat": true, "sun": true,
}

// relativeTerms are regexp fragments; each match is resolved by the date parser.
var relativeTerms = []string{
	"today", "tomorrow", "yesterday",
	"this week", "next week", "past week", "last week",
	`next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`,
	`in \d{1,2} (?:days?|weeks?|months?)`,
}

// Subject vocabulary: canonical code to synonyms. Multi-word synonyms are
// matched as phrases.
var subjectVocabulary = map[string][]string{
	"MATH":        {"math", "maths", "mathematics", "mathematic", "algebra", "geometry"},
	"ENGLISH":     {"english", "eng", "english literature", "english language", "grammar"},
	"SCIENCE":     {"science", "sci", "general science"},
	"PHYSICS":     {"physics", "phy"},
	"CHEMISTRY":   {"chemistry", "chem"},
	"BIOLOGY":     {"biology", "bio"},
	"HINDI":       {"hindi"},
	"SANSKRIT":    {"sanskrit"},
	"FRENCH":      {"french"},
	"SST":         {"sst", "social studies", "social science", "social sciences"},
	"HISTORY":     {"history", "hist"},
	"GEOGRAPHY":   {"geography", "geo"},
	"CIVICS":      {"civics", "political science"},
	"EVS":         {"evs", "environmental studies", "environmental science"},
	"COMPUTER":    {"computer", "computers", "computer science", "cs", "ict", "coding"},
	"ECONOMICS":   {"economics", "eco"},
	"ACCOUNTANCY": {"accountancy", "accounts"},
	"BUSINESS":    {"business studies", "bst"},
	"ART":         {"art", "arts", "drawing", "craft"},
	"MUSIC":       {"music"},
	"PE":          {"pe", "physical education", "sports"},
	"GK":          {"gk", "general knowledge"},
}

var honorifics = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "miss": true, "dr": true,
	"sir": true, "madam": true, "maam": true, "ma'am": true, "prof": true, "professor": true,
}

var institutionalNouns = map[string]bool{
	"school": true, "office": true, "principal": true, "principals": true, "library": true,
	"canteen": true, "admission": true, "admissions": true, "fee": true, "fees": true,
	"transport": true, "bus": true, "uniform": true, "timetable": true, "exam": true,
	"exams": true, "holiday": true, "holidays": true, "event": true, "events": true,
	"teacher": true, "teachers": true, "student": true, "students": true, "class": true,
	"classes": true, "homework": true, "assignment": true, "assignments": true, "staff": true,
	"management": true, "department": true, "reception": true, "hostel": true, "lab": true,
	"auditorium": true, "campus": true, "director": true, "coordinator": true, "vice": true,
	"head": true, "headmaster": true, "headmistress": true, "chairman": true, "board": true,
	"website": true, "video": true, "videos": true, "announcement": true, "announcements": true,
	"grade": true, "section": true, "calendar": true, "result": true, "results": true,
}

var nameStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true, "was": true, "our": true,
	"your": true, "you": true, "me": true, "my": true, "i": true, "we": true, "it": true,
	"this": true, "that": true, "there": true, "who": true, "what": true, "about": true,
	"please": true, "tell": true, "can": true, "could": true, "know": true, "hi": true,
	"hello": true, "hey": true, "thanks": true, "ok": true, "okay": true, "good": true,
	"morning": true, "evening": true, "afternoon": true, "everyone": true, "all": true, "dear": true,
}

// Words that end the name phrase after a question stem.
var nameBoundaries = map[string]bool{
	"from": true, "in": true, "of": true, "at": true, "for": true, "and": true,
	"with": true, "class": true, "grade": true, "teaches": true, "who": true, "on": true,
}

var personStems = []string{
	"who is", "who's", "whos", "tell me about", "information about", "info about",
	"details of", "details about", "do you know",
}
