package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	convHTTP "task-assistant/internal/conversation/delivery/http"
	convTelegram "task-assistant/internal/conversation/delivery/telegram"
)

// setupConversationDomain registers the JSON conversation API and, when a
// bot is configured, the Telegram webhook. Both share one session store.
func (srv HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := convHTTP.New(srv.l, srv.conversationUC, srv.sessions)
	convHTTP.RegisterRoutes(api.Group("/conversation"), h, srv.mw)
	srv.l.Infof(ctx, "Conversation API registered at /api/v1/conversation")

	if srv.telegramBot == nil {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
		return nil
	}

	tg := convTelegram.New(srv.l, srv.conversationUC, srv.sessions, srv.telegramBot, srv.turnTimeout)
	srv.gin.POST("/webhook/telegram", srv.mw.TelegramSecret(srv.telegramSecret), tg.HandleWebhook)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	return nil
}
