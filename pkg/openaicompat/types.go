package openaicompat

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. BaseURL and Model default per Vendor.
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaicompat: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURLs[c.Vendor]
	}
	if c.BaseURL == "" {
		return fmt.Errorf("openaicompat: BaseURL is required for vendor %q", c.Vendor)
	}
	if c.Model == "" {
		c.Model = defaultModels[c.Vendor]
	}
	if c.Model == "" {
		return fmt.Errorf("openaicompat: Model is required for vendor %q", c.Vendor)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type client struct {
	vendor     string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is a chat completion request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// Response carries the first choice.
type Response struct {
	Content      string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
