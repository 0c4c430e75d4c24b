package http

import (
	"github.com/gin-gonic/gin"

	"school-assistant/pkg/response"
)

// Chat godoc
// @Summary     Answer a chat message
// @Description Classifies the utterance, retrieves grounded context and returns the assistant's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat request"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Chat: invalid request: %v", err)
		response.Error(c, err, nil)
		return
	}

	resp, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Chat: uc.Answer: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(resp))
}
