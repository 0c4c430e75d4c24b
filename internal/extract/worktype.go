package extract

import (
	"regexp"
	"strconv"

	"school-assistant/internal/model"
)

var workTypePatterns = []struct {
	workType model.WorkType
	re       *regexp.Regexp
}{
	{model.WorkTypeAssignment, regexp.MustCompile(`\b(?:assignments?|homeworks?|hw|projects?|worksheets?)\b`)},
	{model.WorkTypeQuiz, regexp.MustCompile(`\b(?:quiz|quizzes|quizes|tests?)\b`)},
	{model.WorkTypeMaterial, regexp.MustCompile(`\b(?:materials?|notes|resources?|study material)\b`)},
	{model.WorkTypeQuestion, regexp.MustCompile(`\bquestions?\b`)},
}

// Nouns that on their own mean the caller's class work. The other work-type
// words (test, notes, question...) are common in ordinary questions.
var strongWorkRe = regexp.MustCompile(`\b(?:assignments?|homeworks?|hw|worksheets?|quiz|quizzes|quizes)\b`)

// subjectWorkRe matches a subject directly qualifying a work-type noun, as in
// "maths notes" or "physics test".
var subjectWorkRe = buildSubjectWorkRe()

func buildSubjectWorkRe() *regexp.Regexp {
	var words []string
	for _, code := range sortedSubjectCodes() {
		words = append(words, subjectVocabulary[code]...)
	}
	return regexp.MustCompile(`\b` + alternation(words) + `\s+(?:tests?|notes|materials?|resources?|questions?|projects?|study material)\b`)
}

// StrongWorkType reports whether text names class work unambiguously: a
// homework-like noun, or a work-type noun qualified by a subject.
func StrongWorkType(text string) bool {
	normalized := Normalize(text)
	return strongWorkRe.MatchString(normalized) || subjectWorkRe.MatchString(normalized)
}

var (
	latestCountRe = regexp.MustCompile(`\b(?:latest|last|recent|newest|top|most recent)\s+(\d{1,2})\b`)
	countLatestRe = regexp.MustCompile(`\b(\d{1,2})\s+(?:latest|newest|most recent|recent)\b`)
	bareLatestRe  = regexp.MustCompile(`\b(?:latest|newest|most recent)\s+([a-z]+)\b`)
)

// WorkType returns the earliest coursework kind mentioned, or WorkTypeAny.
func WorkType(text string) model.WorkType {
	normalized := Normalize(text)
	best, bestPos := model.WorkTypeAny, -1
	for _, p := range workTypePatterns {
		loc := p.re.FindStringIndex(normalized)
		if loc == nil {
			continue
		}
		if bestPos < 0 || loc[0] < bestPos {
			best, bestPos = p.workType, loc[0]
		}
	}
	return best
}

// LatestCount returns N for "latest N" / "last N" / "N most recent", and 1
// for a bare "latest <singular noun>".
func LatestCount(text string) *int {
	normalized := Normalize(text)
	for _, re := range []*regexp.Regexp{latestCountRe, countLatestRe} {
		if m := re.FindStringSubmatch(normalized); m != nil {
			if n, _ := strconv.Atoi(m[1]); n > 0 {
				return &n
			}
		}
	}
	if m := bareLatestRe.FindStringSubmatch(normalized); m != nil {
		noun := m[1]
		if noun[len(noun)-1] != 's' {
			one := 1
			return &one
		}
	}
	return nil
}
