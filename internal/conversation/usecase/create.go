package usecase

import (
	"context"
	"fmt"

	"task-assistant/internal/conversation"
	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
	"task-assistant/pkg/gcalendar"
)

func (uc *implUseCase) createTask(ctx context.Context, it conversation.Intent, cc conversation.Context) (string, conversation.Context) {
	priority := it.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	t, err := uc.store.Create(ctx, repository.CreateTaskOptions{
		Title:    it.TaskTitle,
		Priority: priority,
		Status:   model.StatusPending,
		DueDate:  it.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "usecase.createTask: store.Create %q: %v", it.TaskTitle, err)
		return msgCreateFailed, cc
	}

	uc.l.Infof(ctx, "usecase.createTask: created task id=%s", t.ID)
	cc.LastTaskID, cc.LastTaskTitle = t.ID, t.Title

	uc.tryCreateCalendarEvent(ctx, t)
	return formatCreated(t, uc.dates.Location()), cc
}

// tryCreateCalendarEvent adds an all-day event for a task with a due date.
// Failures are logged and never reach the user.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	event, err := uc.calendar.CreateAllDayEvent(ctx, gcalendar.AllDayEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: fmt.Sprintf("Task %s (%s priority)", t.ID, t.Priority),
		Date:        t.DueDate.In(uc.dates.Location()),
	})
	if err != nil {
		uc.l.Warnf(ctx, "usecase.tryCreateCalendarEvent: task id=%s: %v", t.ID, err)
		return
	}
	uc.l.Infof(ctx, "usecase.tryCreateCalendarEvent: task id=%s event=%s", t.ID, event.ID)
}
