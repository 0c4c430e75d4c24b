package openaicompat

import "context"

// IClient talks to any service exposing the OpenAI chat completions API
// (DeepSeek, Qwen compatible mode, OpenAI).
// Implementations are safe for concurrent use.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Vendor() string
	Model() string
}

// New creates a client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &client{
		vendor:     cfg.Vendor,
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}, nil
}
