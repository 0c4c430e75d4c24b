// Package tokens estimates prompt sizes for context budgeting.
package tokens

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is used when no encoding or model is configured.
const DefaultEncoding = "cl100k_base"

// runesPerToken is the rough English average used by Estimator.
const runesPerToken = 4

// Counter counts tokens in a string.
type Counter interface {
	Count(text string) int
}

// Tiktoken counts with a BPE encoding.
type Tiktoken struct {
	mu  sync.Mutex
	tke *tiktoken.Tiktoken
}

// NewTiktoken loads an encoding by name, or by model name when the first
// lookup fails.
func NewTiktoken(encodingOrModel string) (*Tiktoken, error) {
	if encodingOrModel == "" {
		encodingOrModel = DefaultEncoding
	}
	tke, err := tiktoken.GetEncoding(encodingOrModel)
	if err != nil {
		tke, err = tiktoken.EncodingForModel(encodingOrModel)
		if err != nil {
			return nil, fmt.Errorf("tokens: no encoding for %q: %w", encodingOrModel, err)
		}
	}
	return &Tiktoken{tke: tke}, nil
}

func (t *Tiktoken) Count(text string) int {
	if text == "" {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tke.Encode(text, nil, nil))
}

// Estimator approximates one token per four runes, rounding up.
type Estimator struct{}

func (Estimator) Count(text string) int {
	n := utf8.RuneCountInString(text)
	return (n + runesPerToken - 1) / runesPerToken
}

// New returns a tiktoken counter, or the Estimator when the encoding cannot
// be loaded (for example when the BPE ranks cannot be downloaded).
func New(encodingOrModel string) (Counter, error) {
	t, err := NewTiktoken(encodingOrModel)
	if err != nil {
		return Estimator{}, err
	}
	return t, nil
}

var (
	_ Counter = (*Tiktoken)(nil)
	_ Counter = Estimator{}
)
