package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func (c *client) Vendor() string { return c.vendor }

func (c *client) Model() string { return c.model }

// GenerateContent sends a chat completion request.
func (c *client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request: %w", c.vendor, err)
	}

	url := strings.TrimRight(c.baseURL, "/") + chatCompletionsPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", c.vendor, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: API call failed: %w", c.vendor, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", c.vendor, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, fmt.Errorf("%s: API error %d: %s", c.vendor, resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("%s: API error %d: %s", c.vendor, resp.StatusCode, errResp.Error.Message)
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", c.vendor, err)
	}

	return transformResponse(&out), nil
}

func (c *client) transformRequest(req *Request) *chatRequest {
	out := &chatRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		out.Messages = append(out.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	return out
}

func transformResponse(resp *chatResponse) *Response {
	out := &Response{
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}
	out.Content = resp.Choices[0].Message.Content
	out.FinishReason = resp.Choices[0].FinishReason
	return out
}
