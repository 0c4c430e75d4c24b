package http

import (
	"github.com/gin-gonic/gin"

	"school-assistant/internal/assistant"
	"school-assistant/pkg/log"
)

// Handler is the chat HTTP delivery.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates the chat HTTP handler.
func New(l log.Logger, uc assistant.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
