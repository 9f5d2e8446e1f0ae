package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/middleware"
)

// RegisterRoutes mounts the conversation API under r.
func RegisterRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("/turns", mw.RateLimit(), h.Turn)
	r.GET("/sessions/:id", h.GetSession)
	r.DELETE("/sessions/:id", h.ResetSession)
}
