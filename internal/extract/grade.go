package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	gradeAfterKeywordRe  = regexp.MustCompile(`\b(?:grade|class|std|standard|g)\s*[-:.#]?\s*(\d{1,2})(?:st|nd|rd|th)?[a-z]?\b`)
	gradeBeforeKeywordRe = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s*(?:grade|class|std|standard)\b`)
	romanAfterKeywordRe  = regexp.MustCompile(`\b(?:grade|class|std|standard)\s*[-:.#]?\s*([ivx]{1,4})\b`)
	leadingNumberRe      = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?(?:\s*-?\s*[a-z])?\b`)
	leadingRomanRe       = regexp.MustCompile(`^([ivx]{1,4})(?:\s*-?\s*[a-z])?\b`)
)

var romanValues = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5, "vi": 6,
	"vii": 7, "viii": 8, "ix": 9, "x": 10, "xi": 11, "xii": 12,
}

// Grade returns the first grade number (1..12) adjacent to a grade keyword.
func Grade(text string) *int {
	normalized := Normalize(text)

	type hit struct{ pos, grade int }
	var best *hit
	for _, re := range []*regexp.Regexp{gradeAfterKeywordRe, gradeBeforeKeywordRe} {
		for _, m := range re.FindAllStringSubmatchIndex(normalized, -1) {
			g, _ := strconv.Atoi(normalized[m[2]:m[3]])
			if g < minGrade || g > maxGrade {
				continue
			}
			if best == nil || m[0] < best.pos {
				best = &hit{pos: m[0], grade: g}
			}
			break
		}
	}
	if best == nil {
		return nil
	}
	return &best.grade
}

// NormalizeGradeLabel reads a free-text grade label such as "Grade VIII",
// "8th", "Class 8-B" or "8A". It returns nil when no grade can be read.
func NormalizeGradeLabel(label string) *int {
	if g := Grade(label); g != nil {
		return g
	}

	normalized := strings.TrimSpace(Normalize(label))
	if m := romanAfterKeywordRe.FindStringSubmatch(normalized); m != nil {
		if g, ok := romanValues[m[1]]; ok {
			return &g
		}
	}
	if m := leadingNumberRe.FindStringSubmatch(normalized); m != nil {
		if g, _ := strconv.Atoi(m[1]); g >= minGrade && g <= maxGrade {
			return &g
		}
	}
	if m := leadingRomanRe.FindStringSubmatch(normalized); m != nil {
		if g, ok := romanValues[m[1]]; ok {
			return &g
		}
	}
	return nil
}
