// Package assistant assembles the conversation use case from configuration.
// The API server and the CLI share it.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"task-assistant/config"
	"task-assistant/internal/conversation"
	"task-assistant/internal/conversation/intent"
	"task-assistant/internal/conversation/usecase"
	"task-assistant/internal/task/repository"
	"task-assistant/internal/task/repository/docstore"
	"task-assistant/internal/task/repository/rest"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/gcalendar"
	"task-assistant/pkg/llmprovider"
	pkgLog "task-assistant/pkg/log"
)

// Assistant is the assembled conversation core.
type Assistant struct {
	Dates      *datemath.Parser
	Store      repository.TaskStore
	Classifier conversation.Classifier
	UseCase    conversation.UseCase
}

// Build wires the task store, the optional fallback model, the optional
// calendar and the use case.
func Build(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (*Assistant, error) {
	dates, err := datemath.NewParser(cfg.Conversation.Timezone)
	if err != nil {
		return nil, err
	}

	store, err := NewTaskStore(cfg.TaskStore, dates, l)
	if err != nil {
		return nil, err
	}

	classifier := NewClassifier(ctx, cfg, dates, l)

	opt := usecase.Options{
		CalendarID:   cfg.GoogleCalendar.CalendarID,
		HistoryLimit: cfg.Conversation.HistoryLimit,
	}
	if cal := newCalendar(ctx, cfg.GoogleCalendar, l); cal != nil {
		opt.Calendar = cal
	}

	return &Assistant{
		Dates:      dates,
		Store:      store,
		Classifier: classifier,
		UseCase:    usecase.New(l, store, classifier, dates, opt),
	}, nil
}

// NewClassifier builds the intent classifier with the configured fallback
// model, if any.
func NewClassifier(ctx context.Context, cfg *config.Config, dates *datemath.Parser, l pkgLog.Logger) conversation.Classifier {
	return intent.New(l, dates, newFallback(ctx, cfg.LLM, l))
}

// NewTaskStore opens the configured task store driver.
func NewTaskStore(cfg config.TaskStoreConfig, dates *datemath.Parser, l pkgLog.Logger) (repository.TaskStore, error) {
	switch cfg.Driver {
	case config.TaskStoreDriverREST:
		return rest.New(rest.NewClient(cfg.URL, cfg.AccessToken, cfg.Timeout), l), nil
	case config.TaskStoreDriverDocstore:
		store, err := docstore.New(cfg.DocstorePath, dates.Location(), l)
		if err != nil {
			return nil, fmt.Errorf("open docstore %s: %w", cfg.DocstorePath, err)
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown task store driver %q", cfg.Driver)
}

// newFallback returns nil when no provider is usable, which disables the
// fallback stage of the classifier.
func newFallback(ctx context.Context, cfg config.LLMConfig, l pkgLog.Logger) intent.Fallback {
	providers, err := llmprovider.InitializeProviders(ctx, cfg, l)
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			l.Infof(ctx, "assistant.Build: no LLM provider, classification fallback disabled: %v", err)
		} else {
			l.Warnf(ctx, "assistant.Build: LLM providers unavailable: %v", err)
		}
		return nil
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name() + "/" + p.Model()
	}
	l.Infof(ctx, "assistant.Build: classification fallback via %v", names)

	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
	}, l)
}

// newCalendar returns nil when calendar sync is not configured or the
// credentials cannot be loaded.
func newCalendar(ctx context.Context, cfg config.GoogleCalendarConfig, l pkgLog.Logger) *gcalendar.Client {
	if cfg.CredentialsPath == "" {
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	if err != nil {
		l.Warnf(ctx, "assistant.Build: Google Calendar not available (optional): %v", err)
		return nil
	}
	l.Info(ctx, "assistant.Build: Google Calendar initialized")
	return client
}
