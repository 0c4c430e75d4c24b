package generation

import (
	"strings"

	"school-assistant/pkg/llmprovider"
)

// Classification is the verdict on one completion attempt.
type Classification string

const (
	Complete  Classification = "complete"
	Truncated Classification = "truncated"
	Empty     Classification = "empty"
	Failed    Classification = "error"
)

// Words a finished sentence does not end on.
var danglingWords = map[string]bool{
	"and": true, "or": true, "but": true, "the": true, "a": true, "an": true,
	"to": true, "of": true, "with": true, "for": true, "in": true, "on": true,
	"at": true, "by": true, "from": true, "because": true, "is": true, "are": true,
	"your": true, "my": true, "their": true, "which": true, "that": true, "as": true,
}

// Classify inspects a provider response. A stop reason alone is not trusted:
// text ending mid-clause is treated as truncated.
func Classify(resp *llmprovider.Response, err error) Classification {
	if err != nil {
		return Failed
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return Empty
	}
	switch resp.FinishReason {
	case llmprovider.FinishLength:
		return Truncated
	case llmprovider.FinishOther:
		return Empty
	}
	if EndsMidClause(resp.Text) {
		return Truncated
	}
	return Complete
}

// EndsMidClause reports whether text stops on a connector or a dangling word.
// A trailing link ends the text cleanly, and a dangling word only counts when
// written in lowercase ("section A" is a name, not an article).
func EndsMidClause(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}
	last := fields[len(fields)-1]
	if isLink(last) {
		return false
	}
	switch last[len(last)-1] {
	case ',', ';', ':', '-', '(', '[':
		return true
	}
	return last == strings.ToLower(last) && danglingWords[last]
}

func isLink(token string) bool {
	token = strings.TrimLeft(token, "(<[")
	return strings.Contains(token, "://") || strings.HasPrefix(strings.ToLower(token), "www.")
}
