package extract

import (
	"regexp"
	"sort"
	"strings"
)

type subjectPattern struct {
	code string
	re   *regexp.Regexp
}

var subjectPatterns = buildSubjectPatterns()

func sortedSubjectCodes() []string {
	codes := make([]string, 0, len(subjectVocabulary))
	for code := range subjectVocabulary {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func buildSubjectPatterns() []subjectPattern {
	codes := sortedSubjectCodes()
	out := make([]subjectPattern, 0, len(codes))
	for _, code := range codes {
		out = append(out, subjectPattern{code: code, re: wordAlternation(subjectVocabulary[code])})
	}
	return out
}

func wordAlternation(words []string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + alternation(words) + `\b`)
}

func alternation(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return `(?:` + strings.Join(quoted, "|") + `)`
}

// Subjects returns the sorted set of subject codes mentioned in text.
func Subjects(text string) []string {
	normalized := Normalize(text)
	var codes []string
	for _, p := range subjectPatterns {
		if p.re.MatchString(normalized) {
			codes = append(codes, p.code)
		}
	}
	return codes
}

// SubjectKeywords returns the words that identify code in course names and
// coursework titles. Unknown codes yield nil.
func SubjectKeywords(code string) []string {
	return subjectVocabulary[code]
}

// MatchesSubject reports whether text mentions any of the given subject codes.
func MatchesSubject(text string, codes []string) bool {
	if len(codes) == 0 {
		return true
	}
	normalized := Normalize(text)
	for _, code := range codes {
		for _, p := range subjectPatterns {
			if p.code == code && p.re.MatchString(normalized) {
				return true
			}
		}
	}
	return false
}
