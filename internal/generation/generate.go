package generation

import (
	"context"
	"strings"

	"school-assistant/internal/model"
	"school-assistant/pkg/llmprovider"
)

// Generate returns the model's answer to p, or ErrGenerationExhausted.
// Provider errors are logged here and never returned verbatim.
func (c *Controller) Generate(ctx context.Context, p model.Prompt) (string, error) {
	req := c.request(p)
	resp, err := c.policy.Do(ctx,
		func(actx context.Context) (*llmprovider.Response, error) {
			return c.completer.GenerateContent(actx, req)
		},
		func(attempt uint, class Classification, err error) {
			c.metrics.GenerationAttempt(string(class))
			if class == Complete {
				return
			}
			if err != nil {
				c.l.Warnf(ctx, "%s: attempt %d failed: %v", LogPrefixGenerate, attempt, err)
				return
			}
			c.l.Warnf(ctx, "%s: attempt %d %s", LogPrefixGenerate, attempt, class)
		},
	)
	if err != nil {
		c.l.Errorf(ctx, "%s: %v", LogPrefixGenerate, err)
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

func (c *Controller) request(p model.Prompt) *llmprovider.Request {
	system := p.System
	if p.Context != "" {
		system += "\n\n" + p.Context
	}

	msgs := make([]llmprovider.Message, 0, len(p.History)+1)
	for _, t := range p.History {
		role := llmprovider.RoleUser
		if t.Role == model.TurnAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Text: t.Content})
	}
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Text: p.Utterance})

	return &llmprovider.Request{
		SystemInstruction: system,
		Messages:          msgs,
		Temperature:       c.opts.Temperature,
		MaxTokens:         c.opts.MaxTokens,
	}
}
