package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/conversation"
	"task-assistant/internal/conversation/session"
	"task-assistant/internal/middleware"
	"task-assistant/pkg/log"
	pkgTelegram "task-assistant/pkg/telegram"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Conversation domain
	conversationUC conversation.UseCase
	sessions       *session.Store

	// Telegram delivery, optional
	telegramBot    *pkgTelegram.Bot
	telegramSecret string
	turnTimeout    time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	RequestsPerMin int

	ConversationUC conversation.UseCase
	Sessions       *session.Store

	// TelegramBot is nil when the Telegram webhook is disabled.
	TelegramBot    *pkgTelegram.Bot
	TelegramSecret string
	TurnTimeout    time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             middleware.New(logger, cfg.RequestsPerMin),
		conversationUC: cfg.ConversationUC,
		sessions:       cfg.Sessions,
		telegramBot:    cfg.TelegramBot,
		telegramSecret: cfg.TelegramSecret,
		turnTimeout:    cfg.TurnTimeout,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation use case is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	return nil
}
