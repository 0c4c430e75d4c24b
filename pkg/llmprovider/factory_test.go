package llmprovider_test

import (
	"errors"
	"testing"
	"time"

	"school-assistant/config"
	"school-assistant/pkg/llmprovider"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g-key", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "q-key", Model: "qwen-plus"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "d-key"},
			{Name: "unknown", Enabled: true, Priority: 4, APIKey: "x"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "qwen" || providers[1].Name() != "gemini" {
		t.Errorf("unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}
	if providers[1].Model() != "gemini-2.5-flash" {
		t.Errorf("Model() = %q", providers[1].Model())
	}
}

func TestInitializeProviders_Errors(t *testing.T) {
	if _, err := llmprovider.InitializeProviders(nil); err == nil {
		t.Error("expected error for nil config")
	}

	_, err := llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: false, APIKey: "k"}},
	})
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}

	_, err = llmprovider.InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1}},
	})
	if err == nil {
		t.Error("expected error when the only provider has no API key")
	}
}

func TestManagerConfig(t *testing.T) {
	got, err := llmprovider.ManagerConfig(&config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      "500ms",
		MaxTotalTimeout: "45s",
	})
	if err != nil {
		t.Fatalf("ManagerConfig: %v", err)
	}
	if !got.FallbackEnabled || got.RetryAttempts != 2 || got.RetryDelay != 500*time.Millisecond || got.MaxTotalTimeout != 45*time.Second {
		t.Errorf("unexpected config %+v", got)
	}

	if _, err := llmprovider.ManagerConfig(&config.LLMConfig{RetryDelay: "soon"}); err == nil {
		t.Error("expected error for invalid duration")
	}
}
