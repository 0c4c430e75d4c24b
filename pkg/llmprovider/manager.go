package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"

	"school-assistant/pkg/log"
)

const (
	LogPrefixGenerate = "pkg.llmprovider.GenerateContent"
)

// Manager sends each request to the providers in priority order, retrying
// and falling back as configured. It stops at the first provider that
// answers.
type Manager struct {
	providers []Provider
	config    Config
	logger    log.Logger
}

// Config tunes retry and fallback across providers.
type Config struct {
	FallbackEnabled bool
	// RetryAttempts is per provider; values below 1 mean a single call.
	RetryAttempts int
	RetryDelay    time.Duration
	// MaxTotalTimeout bounds the whole fallback chain.
	MaxTotalTimeout time.Duration
}

// NewManager creates a Manager. A nil config means one call per provider
// without fallback.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	m := &Manager{providers: providers, logger: logger}
	if config != nil {
		m.config = *config
	}
	if m.config.RetryAttempts < 1 {
		m.config.RetryAttempts = 1
	}
	return m
}

// GenerateContent returns the first successful completion. Cancellation of
// ctx ends the chain immediately.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrEmptyRequest
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: stopped after %d provider(s): %w", LogPrefixGenerate, i, err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			if resp.ProviderName == "" {
				resp.ProviderName = provider.Name()
			}
			if resp.ModelName == "" {
				resp.ModelName = provider.Model()
			}
			m.logSuccess(ctx, resp)
			return resp, nil
		}

		m.logger.Warnf(ctx, "%s: %s/%s failed: %v", LogPrefixGenerate, provider.Name(), provider.Model(), err)
		lastErr = err

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", LogPrefixGenerate, ctxErr)
		}
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries one provider with a linearly growing delay.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	return retry.DoWithData(
		func() (*Response, error) {
			return provider.GenerateContent(ctx, req)
		},
		retry.Context(ctx),
		retry.Attempts(uint(m.config.RetryAttempts)),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
		retry.DelayType(func(n uint, _ error, _ *retry.Config) time.Duration {
			return time.Duration(n+1) * m.config.RetryDelay
		}),
		retry.LastErrorOnly(true),
	)
}

func (m *Manager) logSuccess(ctx context.Context, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "%s: %s/%s finish=%s tokens in=%d out=%d",
		LogPrefixGenerate, resp.ProviderName, resp.ModelName, resp.FinishReason, in, out)
}
