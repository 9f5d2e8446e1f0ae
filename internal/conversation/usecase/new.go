// Package usecase drives one conversation turn: it consumes a pending
// disambiguation step or classifies the message and runs the matching task
// operation.
package usecase

import (
	"context"
	"math/rand"
	"time"

	"task-assistant/internal/conversation"
	"task-assistant/internal/task/repository"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/gcalendar"
	pkgLog "task-assistant/pkg/log"
)

// Calendar receives an all-day event for every task created with a due date.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateAllDayEvent(ctx context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error)
}

// Options are the optional collaborators and knobs of the use case.
type Options struct {
	// Calendar is nil when calendar sync is disabled.
	Calendar     Calendar
	CalendarID   string
	HistoryLimit int
}

type implUseCase struct {
	l            pkgLog.Logger
	store        repository.TaskStore
	classifier   conversation.Classifier
	dates        *datemath.Parser
	calendar     Calendar
	calendarID   string
	historyLimit int

	now  func() time.Time
	pick func(n int) int
}

// New creates a conversation UseCase.
func New(
	l pkgLog.Logger,
	store repository.TaskStore,
	classifier conversation.Classifier,
	dates *datemath.Parser,
	opt Options,
) conversation.UseCase {
	limit := opt.HistoryLimit
	if limit <= 0 {
		limit = conversation.DefaultHistoryLimit
	}
	calendarID := opt.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implUseCase{
		l:            l,
		store:        store,
		classifier:   classifier,
		dates:        dates,
		calendar:     opt.Calendar,
		calendarID:   calendarID,
		historyLimit: limit,
		now:          time.Now,
		pick:         rand.Intn,
	}
}
