package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// processTurnReq binds the body and assigns a new session id when the
// client did not send one.
func (h *handler) processTurnReq(c *gin.Context) (turnReq, error) {
	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	return req, nil
}

func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingSessionID
	}
	if len(id) > maxSessionIDLength {
		return "", errSessionIDTooLong
	}
	return id, nil
}
