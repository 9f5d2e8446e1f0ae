package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/conversation"
	"task-assistant/internal/conversation/session"
	pkgLog "task-assistant/pkg/log"
	pkgTelegram "task-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers replies to a chat. *pkgTelegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendTyping(ctx context.Context, chatID int64) error
}

type handler struct {
	l           pkgLog.Logger
	uc          conversation.UseCase
	sessions    *session.Store
	bot         Sender
	turnTimeout time.Duration
}

// New creates a new Telegram delivery handler. turnTimeout bounds the
// background processing of one message.
func New(l pkgLog.Logger, uc conversation.UseCase, sessions *session.Store, bot *pkgTelegram.Bot, turnTimeout time.Duration) Handler {
	return newHandler(l, uc, sessions, bot, turnTimeout)
}

func newHandler(l pkgLog.Logger, uc conversation.UseCase, sessions *session.Store, bot Sender, turnTimeout time.Duration) *handler {
	if turnTimeout <= 0 {
		turnTimeout = defaultTurnTimeout
	}
	return &handler{
		l:           l,
		uc:          uc,
		sessions:    sessions,
		bot:         bot,
		turnTimeout: turnTimeout,
	}
}
