package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"school-assistant/config"
	"school-assistant/pkg/gemini"
	"school-assistant/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Disabled providers are filtered out and the rest are sorted by priority.
// Providers that fail to initialize are skipped unless none remain.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// ManagerConfig converts the configured strings into a manager Config.
func ManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	var err error
	if cfg.RetryDelay != "" {
		if out.RetryDelay, err = time.ParseDuration(cfg.RetryDelay); err != nil {
			return nil, fmt.Errorf("llm.retry_delay: %w", err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if out.MaxTotalTimeout, err = time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
		}
	}
	return out, nil
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	var httpClient *http.Client
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("provider %s: invalid timeout: %w", cfg.Name, err)
		}
		httpClient = &http.Client{Timeout: d}
	}

	switch cfg.Name {
	case "gemini":
		gcfg := gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model, APIURL: cfg.BaseURL, HTTPClient: httpClient}
		client, err := gemini.New(gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case openaicompat.VendorDeepSeek, openaicompat.VendorQwen, "alibaba", openaicompat.VendorOpenAI:
		vendor := cfg.Name
		if vendor == "alibaba" {
			vendor = openaicompat.VendorQwen
		}
		ocfg := openaicompat.Config{Vendor: vendor, APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL, HTTPClient: httpClient}
		client, err := openaicompat.New(ocfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", vendor, err)
		}
		return NewOpenAICompatAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
