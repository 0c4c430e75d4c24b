package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	// ErrEmptyRequest is returned before any provider is called.
	ErrEmptyRequest = errors.New("request has no messages")
)

// ProviderError tags an upstream failure with the provider that produced it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
