package retrieval

import (
	"encoding/json"
	"strings"

	"school-assistant/pkg/tokens"
)

// builder tracks the running token estimate of the context being packed.
type builder struct {
	counter tokens.Counter
	budget  int
	used    int
}

func (b *builder) cost(v any) int {
	data, err := json.Marshal(v)
	if err != nil {
		return b.budget + 1
	}
	return b.counter.Count(string(data))
}

func (b *builder) fits(n int) bool {
	return b.used+n <= b.budget
}

// take adds v when it fits and reports whether it did.
func (b *builder) take(v any) bool {
	n := b.cost(v)
	if !b.fits(n) {
		return false
	}
	b.used += n
	return true
}

func (b *builder) remaining() int {
	return b.budget - b.used
}

// truncateTokens shortens text until it is at most max tokens.
func truncateTokens(counter tokens.Counter, text string, max int) string {
	if max <= 0 {
		return ""
	}
	n := counter.Count(text)
	if n <= max {
		return text
	}
	runes := []rune(text)
	keep := len(runes) * max / n
	for keep > 0 {
		cut := strings.TrimSpace(string(runes[:keep])) + truncateMarker
		if counter.Count(cut) <= max {
			return cut
		}
		keep = keep * 9 / 10
	}
	return ""
}
