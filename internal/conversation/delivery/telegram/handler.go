package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/conversation"
	pkgResponse "task-assistant/pkg/response"
	pkgTelegram "task-assistant/pkg/telegram"
)

// HandleWebhook acknowledges the update immediately and runs the turn in the
// background, since Telegram expects a reply within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), h.turnTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: processMessage chat=%d: %v", msg.Chat.ID, err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles one text message, including the built-in commands.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch command(text) {
	case cmdStart:
		return h.bot.SendMessage(ctx, chatID, msgWelcome)
	case cmdHelp:
		return h.bot.SendMessage(ctx, chatID, msgHelp)
	case cmdReset:
		h.sessions.Reset(sessionKey(chatID))
		return h.bot.SendMessage(ctx, chatID, msgReset)
	}

	if err := h.bot.SendTyping(ctx, chatID); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	var out conversation.TurnOutput
	h.sessions.Run(sessionKey(chatID), func(cc conversation.Context) conversation.Context {
		out = h.uc.HandleTurn(ctx, conversation.TurnInput{Text: text, Context: cc})
		return out.Context
	})

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		h.l.Warnf(ctx, "telegram handler: turn for chat=%d exceeded %s", chatID, h.turnTimeout)
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
		defer cancel()
		return h.bot.SendMessage(sendCtx, chatID, out.Response)
	}
	return h.bot.SendMessage(ctx, chatID, out.Response)
}

// command returns the bot command of text without a "@botname" suffix, or
// "" when text is not a command.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("telegram:%d", chatID)
}
