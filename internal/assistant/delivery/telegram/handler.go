package telegram

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"school-assistant/internal/assistant"
	"school-assistant/internal/model"
	pkgResponse "school-assistant/pkg/response"
	pkgTelegram "school-assistant/pkg/telegram"
)

// HandleWebhook acknowledges the update at once and answers in the
// background, since Telegram retries webhooks that take too long.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.l.Warnf(ctx, "assistant.delivery.telegram.HandleWebhook: bad secret token")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "assistant.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		actx, cancel := context.WithTimeout(bgCtx, h.timeout)
		defer cancel()
		if err := h.processMessage(actx, msg); err != nil {
			h.l.Errorf(actx, "assistant.delivery.telegram.processMessage: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, failureMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, welcomeMessage)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpMessage)
	}

	resp, err := h.uc.Answer(ctx, assistant.AnswerInput{
		Utterance: text,
		Caller:    model.Anonymous(),
	})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, reply(resp))
}

// reply flattens a Response for a text-only channel. Map and calendar
// links are appended; video lists are already part of the text.
func reply(resp model.Response) string {
	if resp.Aux == nil || resp.Aux.URL == "" || strings.Contains(resp.Text, resp.Aux.URL) {
		return resp.Text
	}
	return resp.Text + "\n\n" + resp.Aux.URL
}
