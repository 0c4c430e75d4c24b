package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"

	"school-assistant/pkg/llmprovider"
)

// Defaults
const (
	DefaultAttempts       = 3
	DefaultAttemptTimeout = 30 * time.Second
	DefaultDelay          = 500 * time.Millisecond
)

// Policy retries incomplete completions with an unchanged request.
// Attempts are sequential and bounded; cancellation of ctx stops them.
type Policy struct {
	Attempts       uint
	AttemptTimeout time.Duration
	Delay          time.Duration
}

// DefaultPolicy is three attempts of up to 30s each.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:       DefaultAttempts,
		AttemptTimeout: DefaultAttemptTimeout,
		Delay:          DefaultDelay,
	}
}

func (p Policy) normalized() Policy {
	if p.Attempts == 0 {
		p.Attempts = DefaultAttempts
	}
	if p.AttemptTimeout <= 0 {
		p.AttemptTimeout = DefaultAttemptTimeout
	}
	if p.Delay < 0 {
		p.Delay = 0
	}
	return p
}

// Do runs call until it returns a Complete response or attempts run out.
// observe, when set, sees the classification of every attempt.
func (p Policy) Do(
	ctx context.Context,
	call func(context.Context) (*llmprovider.Response, error),
	observe func(attempt uint, c Classification, err error),
) (*llmprovider.Response, error) {
	p = p.normalized()
	var attempt uint

	resp, err := retry.DoWithData(
		func() (*llmprovider.Response, error) {
			attempt++
			actx, cancel := context.WithTimeout(ctx, p.AttemptTimeout)
			defer cancel()

			resp, err := call(actx)
			class := Classify(resp, err)
			if observe != nil {
				observe(attempt, class, err)
			}

			switch class {
			case Complete:
				return resp, nil
			case Failed:
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, retry.Unrecoverable(ctxErr)
				}
				return nil, err
			}
			return nil, fmt.Errorf("%w: %s", ErrGenerationIncomplete, class)
		},
		retry.Context(ctx),
		retry.Attempts(p.Attempts),
		retry.Delay(p.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w after %d attempt(s): %v", ErrGenerationExhausted, attempt, err)
	}
	return resp, nil
}
