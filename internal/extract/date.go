package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"school-assistant/internal/model"
)

var (
	// Slashes may omit the year; dots and dashes need one, since "8.5" and
	// "10-12" are scores and ranges far more often than dates.
	slashDateRe   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d{4}|\d{2}))?\b`)
	dottedDateRe  = regexp.MustCompile(`\b(\d{1,2})[\-.](\d{1,2})[\-.](\d{4}|\d{2})\b`)
	scoreBeforeRe = regexp.MustCompile(`(?:\b(?:grades?|class(?:es)?|std|standard|scored?|got|marks?|out of)\s*)$`)
	scoreAfterRe  = regexp.MustCompile(`^(?:\s*%|\s+(?:marks?|points?|percent|score)\b)`)
	dayNumberRe   = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?$`)
	relativeRe    = regexp.MustCompile(`\b(` + strings.Join(relativeTerms, "|") + `)\b`)
)

type datedRange struct {
	pos int
	r   model.DateRange
}

// Dates extracts every date mention in text as full-day ranges, in order of
// appearance and without duplicates. now fixes "today" and the default year.
func (e *Extractor) Dates(text string, now time.Time) []model.DateRange {
	normalized := Normalize(text)
	now = now.In(e.dates.Location())

	var found []datedRange

	// Numeric dates are blanked out so their digits are not read as day lists.
	blanked := []byte(normalized)
	for _, re := range []*regexp.Regexp{slashDateRe, dottedDateRe} {
		for _, m := range re.FindAllStringSubmatchIndex(normalized, -1) {
			if r, ok := e.numericMatch(normalized, m, now.Year()); ok {
				found = append(found, datedRange{pos: m[0], r: r})
			}
			for i := m[0]; i < m[1]; i++ {
				blanked[i] = ' '
			}
		}
	}

	found = append(found, e.monthDates(string(blanked), now.Year())...)

	for _, m := range relativeRe.FindAllStringSubmatchIndex(normalized, -1) {
		start, end, err := e.dates.ParseRange(normalized[m[2]:m[3]], now)
		if err != nil {
			continue
		}
		found = append(found, datedRange{pos: m[0], r: model.DateRange{Start: start, End: end}})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })

	out := make([]model.DateRange, 0, len(found))
	seen := make(map[[2]int64]bool, len(found))
	for _, f := range found {
		key := [2]int64{f.r.Start.Unix(), f.r.End.Unix()}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f.r)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// numericMatch resolves one numeric date match, ignoring grade ranges and
// scores such as "grade 8/9" or "8/10 marks".
func (e *Extractor) numericMatch(normalized string, m []int, defaultYear int) (model.DateRange, bool) {
	if scoreBeforeRe.MatchString(normalized[:m[0]]) || scoreAfterRe.MatchString(normalized[m[1]:]) {
		return model.DateRange{}, false
	}
	a, _ := strconv.Atoi(normalized[m[2]:m[3]])
	b, _ := strconv.Atoi(normalized[m[4]:m[5]])
	year := defaultYear
	if m[6] >= 0 {
		year, _ = strconv.Atoi(normalized[m[6]:m[7]])
		if year < 100 {
			year += 2000
		}
	}
	return e.numericDate(a, b, year)
}

// numericDate resolves a/b as DD/MM when both readings are valid, otherwise
// as whichever reading is a real date.
func (e *Extractor) numericDate(a, b, year int) (model.DateRange, bool) {
	if start, end, ok := e.dates.Date(year, time.Month(b), a); ok {
		return model.DateRange{Start: start, End: end}, true
	}
	if start, end, ok := e.dates.Date(year, time.Month(a), b); ok {
		return model.DateRange{Start: start, End: end}, true
	}
	return model.DateRange{}, false
}

// monthDates finds day lists attached to a month name, either before it
// ("22, 24 and 30 october", "the 3rd of may") or after it ("october 22 and 24").
func (e *Extractor) monthDates(normalized string, year int) []datedRange {
	tokens := positionedTokens(normalized)
	var out []datedRange

	for i, tok := range tokens {
		month, ok := matchMonth(tok.text)
		if !ok {
			continue
		}

		days := collectDaysBackward(tokens, i)
		if len(days) == 0 {
			days = collectDaysForward(tokens, i)
		}
		for _, d := range days {
			if start, end, ok := e.dates.Date(year, month, d.day); ok {
				out = append(out, datedRange{pos: d.pos, r: model.DateRange{Start: start, End: end}})
			}
		}
	}
	return out
}

type dayMention struct {
	day int
	pos int
}

func parseDay(s string) (int, bool) {
	m := dayNumberRe.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	d, _ := strconv.Atoi(m[1])
	return d, d >= 1 && d <= 31
}

func isListConnector(s string) bool {
	return s == "and" || s == "&" || s == "or"
}

func collectDaysBackward(tokens []token, monthIdx int) []dayMention {
	var days []dayMention
	for j := monthIdx - 1; j >= 0; j-- {
		t := tokens[j].text
		if t == "of" || t == "the" {
			continue
		}
		if isListConnector(t) && len(days) > 0 {
			continue
		}
		d, ok := parseDay(t)
		if !ok {
			break
		}
		if j > 0 && isGradeKeyword(tokens[j-1].text) {
			break
		}
		days = append(days, dayMention{day: d, pos: tokens[j].pos})
	}
	// collected right to left
	for l, r := 0, len(days)-1; l < r; l, r = l+1, r-1 {
		days[l], days[r] = days[r], days[l]
	}
	return days
}

func collectDaysForward(tokens []token, monthIdx int) []dayMention {
	var days []dayMention
	for j := monthIdx + 1; j < len(tokens); j++ {
		t := tokens[j].text
		if t == "the" && len(days) == 0 {
			continue
		}
		if isListConnector(t) && len(days) > 0 {
			continue
		}
		d, ok := parseDay(t)
		if !ok {
			break
		}
		days = append(days, dayMention{day: d, pos: tokens[j].pos})
	}
	return days
}

// matchMonth accepts full names, prefixes of at least three letters
// ("sept", "oct") and near misses of five letters or more ("febuary",
// "ocotber"). Shorter near misses are ordinary words ("jury", "jane").
func matchMonth(word string) (time.Month, bool) {
	if len(word) < 3 || monthDenylist[word] {
		return 0, false
	}
	for _, m := range months {
		if strings.HasPrefix(m.name, word) {
			return m.month, true
		}
	}
	if len(word) < minFuzzyMonthLen {
		return 0, false
	}
	maxDist := 1
	if len(word) >= 6 {
		maxDist = 2
	}
	for _, m := range months {
		if word[0] != m.name[0] {
			continue
		}
		if levenshtein(word, m.name) <= maxDist {
			return m.month, true
		}
	}
	return 0, false
}

// isMonthName reports an exact full month name.
func isMonthName(word string) bool {
	for _, m := range months {
		if m.name == word {
			return true
		}
	}
	return false
}

func isGradeKeyword(s string) bool {
	switch s {
	case "grade", "class", "std", "standard", "g":
		return true
	}
	return false
}
