package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/conversation"
	"task-assistant/pkg/response"
)

// Turn godoc
// @Summary     Send a message
// @Description Runs one conversation turn. A new session is started when session_id is empty.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body turnReq true "Message"
// @Success     200  {object} turnResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/conversation/turns [POST]
func (h *handler) Turn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var out conversation.TurnOutput
	h.sessions.Run(req.SessionID, func(cc conversation.Context) conversation.Context {
		out = h.uc.HandleTurn(ctx, conversation.TurnInput{Text: req.Message, Context: cc})
		return out.Context
	})

	response.OK(c, h.newTurnResp(req.SessionID, out))
}

// GetSession godoc
// @Summary     Get a session
// @Description Returns the pending question and recent history of a session.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversation/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cc, ok := h.sessions.Get(id)
	if !ok {
		response.NotFound(c, conversation.ErrSessionNotFound)
		return
	}

	response.OK(c, h.newSessionResp(id, cc))
}

// ResetSession godoc
// @Summary     Reset a session
// @Description Forgets the context of a session, including any pending question.
// @Tags        Conversation
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversation/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if !h.sessions.Reset(id) {
		response.NotFound(c, conversation.ErrSessionNotFound)
		return
	}

	h.l.Infof(ctx, "conversation.http.ResetSession: session %s reset", id)
	response.OK(c, nil)
}
