package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	capitalisedSpanRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}\b`)
	titleCaser        = cases.Title(language.English)
)

// PersonName returns a probable person name, title-cased, or "".
func PersonName(text string) string {
	for _, span := range capitalisedSpanRe.FindAllString(text, -1) {
		if name := cleanName(strings.Fields(strings.ToLower(span)), 2); name != "" {
			return name
		}
	}

	normalized := Normalize(text)
	for _, stem := range personStems {
		idx := phraseIndex(normalized, stem)
		if idx < 0 {
			continue
		}
		rest := Tokens(normalized[idx+len(stem):])
		var words []string
		for _, w := range rest {
			if nameBoundaries[w] {
				break
			}
			words = append(words, w)
		}
		if name := cleanName(words, 1); name != "" {
			return name
		}
	}
	return ""
}

// cleanName strips honorifics and stopwords from the edges and rejects
// anything that is not a plain one-to-three word name.
func cleanName(words []string, minWords int) string {
	var kept []string
	for _, w := range words {
		w = strings.Trim(w, ".,?!'\"")
		if w == "" || honorifics[w] || nameStopwords[w] {
			if len(kept) > 0 {
				break
			}
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) < minWords || len(kept) > 3 {
		return ""
	}
	for _, w := range kept {
		if !isNameWord(w) {
			return ""
		}
	}
	return titleCaser.String(strings.Join(kept, " "))
}

func isNameWord(w string) bool {
	if institutionalNouns[w] || weekdayWords[w] || nameStopwords[w] {
		return false
	}
	if isMonthName(w) {
		return false
	}
	for _, p := range subjectPatterns {
		if p.re.MatchString(w) {
			return false
		}
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
