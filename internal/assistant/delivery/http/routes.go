package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the chat route on rg. Extra handlers such as a rate
// limiter run before Chat.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw ...gin.HandlerFunc) {
	rg.POST("/chat", append(mw, h.Chat)...)
}
