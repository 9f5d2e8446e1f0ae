package usecase

import (
	"context"
	"fmt"
	"time"

	"task-assistant/internal/conversation"
	"task-assistant/internal/model"
)

func (uc *implUseCase) filterTasks(ctx context.Context, it conversation.Intent, now time.Time, cc conversation.Context) (string, conversation.Context) {
	tasks, err := uc.store.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.filterTasks: store.List: %v", err)
		return msgFetchFailed, cc
	}

	keep, label := uc.filterPredicate(it, now)
	if keep == nil {
		if len(tasks) == 0 {
			return msgNoTasksYet, cc
		}
		return fmt.Sprintf("📋 Your tasks (%d):\n%s", len(tasks), formatTaskList(tasks, uc.dates.Location())), cc
	}

	matched := make([]model.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			matched = append(matched, t)
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf(msgNoMatches, label), cc
	}
	return fmt.Sprintf("📋 Your %s tasks (%d):\n%s", label, len(matched), formatTaskList(matched, uc.dates.Location())), cc
}

// filterPredicate returns nil for the "all" filter.
func (uc *implUseCase) filterPredicate(it conversation.Intent, now time.Time) (func(model.TaskSummary) bool, string) {
	today := uc.dates.StartOfDay(now)

	switch it.FilterType {
	case conversation.FilterPriority:
		p := model.Priority(it.FilterValue)
		return func(t model.TaskSummary) bool { return t.Priority == p }, string(p) + " priority"

	case conversation.FilterStatus:
		s := model.Status(it.FilterValue)
		return func(t model.TaskSummary) bool { return t.Status == s }, string(s)

	case conversation.FilterDueDate:
		switch it.FilterValue {
		case conversation.DueOverdue:
			return func(t model.TaskSummary) bool {
				return t.DueDate != nil && t.Status != model.StatusCompleted && uc.dates.StartOfDay(*t.DueDate).Before(today)
			}, "overdue"
		case conversation.DueToday:
			return func(t model.TaskSummary) bool {
				return t.DueDate != nil && uc.dates.SameDay(*t.DueDate, today)
			}, "due today"
		}
	}
	return nil, ""
}
