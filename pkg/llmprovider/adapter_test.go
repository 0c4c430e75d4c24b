package llmprovider

import (
	"context"
	"errors"
	"testing"

	"school-assistant/pkg/gemini"
	"school-assistant/pkg/openaicompat"
)

type mockGemini struct {
	got  *gemini.Request
	resp *gemini.Response
	err  error
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.got = req
	return m.resp, m.err
}

func (m *mockGemini) Model() string { return "gemini-test" }

type mockCompat struct {
	got  *openaicompat.Request
	resp *openaicompat.Response
}

func (m *mockCompat) GenerateContent(ctx context.Context, req *openaicompat.Request) (*openaicompat.Response, error) {
	m.got = req
	return m.resp, nil
}

func (m *mockCompat) Vendor() string { return "deepseek" }
func (m *mockCompat) Model() string  { return "deepseek-chat" }

func TestGeminiAdapter(t *testing.T) {
	client := &mockGemini{resp: &gemini.Response{Text: "partial", FinishReason: gemini.FinishReasonMaxTokens}}
	a := NewGeminiAdapter(client)

	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: "sys",
		Messages: []Message{
			{Role: RoleUser, Text: "q1"},
			{Role: RoleAssistant, Text: "a1"},
			{Role: RoleUser, Text: "q2"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.FinishReason != FinishLength || resp.Text != "partial" || resp.ProviderName != "gemini" {
		t.Errorf("unexpected response %+v", resp)
	}
	if client.got.SystemInstruction != "sys" || client.got.Contents[1].Role != gemini.RoleModel {
		t.Errorf("unexpected request %+v", client.got)
	}
}

func TestGeminiAdapter_Error(t *testing.T) {
	a := NewGeminiAdapter(&mockGemini{err: errors.New("boom")})

	_, err := a.GenerateContent(context.Background(), &Request{})
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "gemini" {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestOpenAICompatAdapter(t *testing.T) {
	client := &mockCompat{resp: &openaicompat.Response{Content: "ok", FinishReason: "content_filter"}}
	a := NewOpenAICompatAdapter(client)

	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: "sys",
		Messages:          []Message{{Role: RoleAssistant, Text: "a"}, {Role: RoleUser, Text: "q"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.FinishReason != FinishOther || resp.ProviderName != "deepseek" {
		t.Errorf("unexpected response %+v", resp)
	}
	if len(client.got.Messages) != 3 || client.got.Messages[0].Role != openaicompat.RoleSystem || client.got.Messages[1].Role != openaicompat.RoleAssistant {
		t.Errorf("unexpected messages %+v", client.got.Messages)
	}
}
