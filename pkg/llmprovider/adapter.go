package llmprovider

import (
	"context"

	"school-assistant/pkg/gemini"
	"school-assistant/pkg/openaicompat"
)

// GeminiAdapter adapts the Gemini client to Provider.
type GeminiAdapter struct {
	client gemini.IGemini
}

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	greq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Contents:          make([]gemini.Content, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxOutputTokens:   req.MaxTokens,
	}
	for _, m := range req.Messages {
		role := gemini.RoleUser
		if m.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		greq.Contents = append(greq.Contents, gemini.Content{Role: role, Text: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, greq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Text:         resp.Text,
		FinishReason: geminiFinishReason(resp.FinishReason),
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CandidatesTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string  { return "gemini" }
func (a *GeminiAdapter) Model() string { return a.client.Model() }

func geminiFinishReason(r string) FinishReason {
	switch r {
	case gemini.FinishReasonStop:
		return FinishStop
	case gemini.FinishReasonMaxTokens:
		return FinishLength
	}
	return FinishOther
}

// OpenAICompatAdapter adapts any chat completions client to Provider.
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	creq := &openaicompat.Request{
		Messages:    make([]openaicompat.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		creq.Messages = append(creq.Messages, openaicompat.Message{Role: openaicompat.RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		role := openaicompat.RoleUser
		if m.Role == RoleAssistant {
			role = openaicompat.RoleAssistant
		}
		creq.Messages = append(creq.Messages, openaicompat.Message{Role: role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, creq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Text:         resp.Content,
		FinishReason: openAIFinishReason(resp.FinishReason),
		ProviderName: a.Name(),
		ModelName:    a.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (a *OpenAICompatAdapter) Name() string  { return a.client.Vendor() }
func (a *OpenAICompatAdapter) Model() string { return a.client.Model() }

func openAIFinishReason(r string) FinishReason {
	switch r {
	case openaicompat.FinishReasonStop:
		return FinishStop
	case openaicompat.FinishReasonLength:
		return FinishLength
	}
	return FinishOther
}

var (
	_ Provider = (*GeminiAdapter)(nil)
	_ Provider = (*OpenAICompatAdapter)(nil)
)
