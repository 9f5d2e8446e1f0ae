package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"task-assistant/internal/conversation"
	"task-assistant/internal/conversation/resolver"
	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
)

var reCancel = regexp.MustCompile(`(?i)^\s*(cancel|never\s*mind|forget\s+it|stop|abort)\b`)

var statusChoices = map[string]model.Status{
	"1": model.StatusPending,
	"2": model.StatusInProgress,
	"3": model.StatusCompleted,
}

var priorityChoices = map[string]model.Priority{
	"1": model.PriorityHigh,
	"2": model.PriorityMedium,
	"3": model.PriorityLow,
}

// handlePending consumes a reply to a disambiguation question. A reply that
// resolves nothing re-prompts and keeps the pending action.
func (uc *implUseCase) handlePending(ctx context.Context, text string, now time.Time, cc conversation.Context) (string, conversation.Context) {
	pa := cc.PendingAction
	if reCancel.MatchString(text) {
		cc.PendingAction = nil
		return msgCancelled, cc
	}

	switch pa.Type {
	case conversation.PendingSelectTask:
		target, ok := resolver.Resolve(text, pa.Tasks)
		if !ok {
			return fmt.Sprintf(msgSelectTaskInvalid, len(pa.Tasks)), cc
		}
		return uc.applyDelete(ctx, target, cc)

	case conversation.PendingSelectStatus:
		if pa.SelectedTask == nil {
			return uc.selectTask(text, pa, msgSelectStatus, cc)
		}
		status, ok := statusChoices[text]
		if !ok {
			if status, ok = model.ParseStatus(text); !ok {
				return msgSelectStatusInvalid, cc
			}
		}
		return uc.applyUpdate(ctx, *pa.SelectedTask, repository.UpdateTaskOptions{Status: status}, cc)

	case conversation.PendingSelectPriority:
		if pa.SelectedTask == nil {
			return uc.selectTask(text, pa, msgSelectPriority, cc)
		}
		priority, ok := priorityChoices[text]
		if !ok {
			if priority, ok = model.ParsePriority(text); !ok {
				return msgSelectPriorityInvalid, cc
			}
		}
		return uc.applyUpdate(ctx, *pa.SelectedTask, repository.UpdateTaskOptions{Priority: priority}, cc)
	}

	uc.l.Warnf(ctx, "usecase.handlePending: unknown pending type %q dropped", pa.Type)
	cc.PendingAction = nil
	return uc.dispatch(ctx, text, now, cc)
}

// selectTask moves a status or priority step from choosing the task to
// choosing the value.
func (uc *implUseCase) selectTask(text string, pa *conversation.PendingAction, prompt string, cc conversation.Context) (string, conversation.Context) {
	target, ok := resolver.Resolve(text, pa.Tasks)
	if !ok {
		return fmt.Sprintf(msgSelectTaskInvalid, len(pa.Tasks)), cc
	}
	cc.PendingAction = &conversation.PendingAction{Type: pa.Type, SelectedTask: &target}
	return fmt.Sprintf(prompt, target.Title), cc
}
