package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"school-assistant/internal/assistant"
	pkgLog "school-assistant/pkg/log"
	pkgTelegram "school-assistant/pkg/telegram"
)

const (
	DefaultAnswerTimeout = 60 * time.Second

	welcomeMessage = "Hello! I am the school assistant. Ask me about admissions, fees, timings, events or anything else about the school."
	helpMessage    = "Just type your question, for example \"what are the school timings\" or \"when is the annual day\". Sign in on the school app to ask about your own classes and coursework."
	failureMessage = "Sorry, something went wrong while answering. Please try again."
)

// Handler is the Telegram webhook delivery.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers replies to a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type handler struct {
	l       pkgLog.Logger
	uc      assistant.UseCase
	bot     Sender
	secret  string
	timeout time.Duration
}

// New creates the Telegram webhook handler. When secret is non-empty every
// update must carry it in the secret-token header.
func New(l pkgLog.Logger, uc assistant.UseCase, bot Sender, secret string, timeout time.Duration) Handler {
	if timeout <= 0 {
		timeout = DefaultAnswerTimeout
	}
	return &handler{
		l:       l,
		uc:      uc,
		bot:     bot,
		secret:  secret,
		timeout: timeout,
	}
}

var _ Sender = (*pkgTelegram.Bot)(nil)
