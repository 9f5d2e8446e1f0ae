package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/conversation"
	"task-assistant/internal/conversation/session"
	pkgLog "task-assistant/pkg/log"
)

// Handler is the JSON conversation API.
type Handler interface {
	Turn(c *gin.Context)
	GetSession(c *gin.Context)
	ResetSession(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       conversation.UseCase
	sessions *session.Store
}

// New creates a new HTTP handler for the conversation domain.
func New(l pkgLog.Logger, uc conversation.UseCase, sessions *session.Store) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
	}
}
