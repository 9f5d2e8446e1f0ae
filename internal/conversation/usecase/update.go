package usecase

import (
	"context"
	"fmt"

	"task-assistant/internal/conversation"
	"task-assistant/internal/conversation/resolver"
	"task-assistant/internal/model"
	"task-assistant/internal/task/repository"
)

func (uc *implUseCase) updateTask(ctx context.Context, it conversation.Intent, cc conversation.Context) (string, conversation.Context) {
	tasks, err := uc.store.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.updateTask: store.List: %v", err)
		return msgFetchFailed, cc
	}
	if len(tasks) == 0 {
		return msgNoTasksYet, cc
	}

	target, ok := resolver.Resolve(it.TaskIdentifier, tasks)
	if !ok {
		pending, prompt := conversation.PendingSelectStatus, msgSelectTaskStatus
		if it.Action == conversation.ActionChangePriority {
			pending, prompt = conversation.PendingSelectPriority, msgSelectTaskPriority
		}
		return uc.askForTask(pending, prompt, tasks, cc)
	}

	cc.PendingAction = nil
	var opt repository.UpdateTaskOptions
	if it.Action == conversation.ActionChangePriority {
		opt.Priority = model.ParsePriorityOr(it.NewValue, model.PriorityMedium)
	} else {
		opt.Status = model.ParseStatusOr(it.NewValue, model.StatusCompleted)
	}
	return uc.applyUpdate(ctx, target, opt, cc)
}

// applyUpdate issues the update and always clears the pending action.
func (uc *implUseCase) applyUpdate(ctx context.Context, target model.TaskSummary, opt repository.UpdateTaskOptions, cc conversation.Context) (string, conversation.Context) {
	cc.PendingAction = nil

	t, err := uc.store.Update(ctx, target.ID, opt)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.applyUpdate: store.Update id=%s: %v", target.ID, err)
		return msgUpdateFailed, cc
	}

	title := t.Title
	if title == "" {
		title = target.Title
	}
	cc.LastTaskID, cc.LastTaskTitle = target.ID, title

	change := string(opt.Status)
	if opt.Priority != "" {
		change = string(opt.Priority) + " priority"
	}
	return fmt.Sprintf(msgTaskUpdated, title, change), cc
}

// askForTask enters a task-selection step over the first listed tasks.
func (uc *implUseCase) askForTask(pending conversation.PendingType, prompt string, tasks []model.TaskSummary, cc conversation.Context) (string, conversation.Context) {
	cc.PendingAction = &conversation.PendingAction{Type: pending, Tasks: capTasks(tasks)}
	return fmt.Sprintf("%s\n%s\n%s", prompt, formatTaskList(tasks, uc.dates.Location()), msgSelectTaskHint), cc
}
