package generation

import (
	"context"

	"school-assistant/pkg/llmprovider"
	"school-assistant/pkg/log"
	"school-assistant/pkg/metrics"
)

// Log prefixes
const (
	LogPrefixGenerate = "internal.generation.Generate"
)

// Defaults
const (
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 1024
)

// Completer is the completion service; *llmprovider.Manager satisfies it.
type Completer interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tune the completion request.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Controller turns prompts into model text under a retry Policy.
type Controller struct {
	completer Completer
	policy    Policy
	opts      Options
	metrics   metrics.Recorder
	l         log.Logger
}

// New creates a Controller.
func New(completer Completer, policy Policy, opts Options, rec metrics.Recorder, l log.Logger) *Controller {
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Controller{
		completer: completer,
		policy:    policy.normalized(),
		opts:      opts,
		metrics:   rec,
		l:         l,
	}
}
