package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	tokenRe      = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?|&`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases text, folds accents and collapses whitespace.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)
	folded = strings.NewReplacer("’", "'", "‘", "'").Replace(folded)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(folded, " "))
}

// Tokens splits normalized text into word tokens.
func Tokens(normalized string) []string {
	return tokenRe.FindAllString(normalized, -1)
}

type token struct {
	text string
	pos  int
}

func positionedTokens(normalized string) []token {
	idx := tokenRe.FindAllStringIndex(normalized, -1)
	out := make([]token, 0, len(idx))
	for _, loc := range idx {
		out = append(out, token{text: normalized[loc[0]:loc[1]], pos: loc[0]})
	}
	return out
}

// ContainsPhrase reports whether phrase occurs in normalized text on word boundaries.
func ContainsPhrase(normalized, phrase string) bool {
	return phraseIndex(normalized, phrase) >= 0
}

func phraseIndex(normalized, phrase string) int {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	if err != nil {
		return -1
	}
	loc := re.FindStringIndex(normalized)
	if loc == nil {
		return -1
	}
	return loc[0]
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
