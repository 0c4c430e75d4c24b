package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

const (
	// SecretTokenHeader carries the secret registered with SetWebhook on
	// every webhook call.
	SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

	// MaxMessageRunes is the Bot API limit for one message.
	MaxMessageRunes = 4096

	defaultTimeout = 10 * time.Second
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram. A non-empty secret is
// echoed back by Telegram in SecretTokenHeader.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL, secret string) error {
	var apiResp APIResponse
	if err := b.call(ctx, "setWebhook", SetWebhookRequest{URL: webhookURL, SecretToken: secret}, &apiResp); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat. Text longer
// than MaxMessageRunes is split into several messages.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	for _, part := range split(text, MaxMessageRunes) {
		req := SendMessageRequest{ChatID: chatID, Text: part, DisableWebPagePreview: true}
		if err := b.call(ctx, "sendMessage", req, nil); err != nil {
			return fmt.Errorf("failed to send message: %w", err)
		}
	}
	return nil
}

func (b *Bot) call(ctx context.Context, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s response (status %d): %w", method, resp.StatusCode, err)
		}
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	return nil
}

// split cuts text into chunks of at most n runes, preferring line breaks.
func split(text string, n int) []string {
	if utf8.RuneCountInString(text) <= n {
		return []string{text}
	}
	var parts []string
	runes := []rune(text)
	for len(runes) > n {
		cut := n
		for i := n - 1; i > n/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
