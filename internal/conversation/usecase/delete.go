package usecase

import (
	"context"
	"fmt"

	"task-assistant/internal/conversation"
	"task-assistant/internal/conversation/resolver"
	"task-assistant/internal/model"
)

func (uc *implUseCase) deleteTask(ctx context.Context, it conversation.Intent, cc conversation.Context) (string, conversation.Context) {
	tasks, err := uc.store.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.deleteTask: store.List: %v", err)
		return msgFetchFailed, cc
	}
	if len(tasks) == 0 {
		return msgNoTasksYet, cc
	}

	target, ok := resolver.Resolve(it.TaskIdentifier, tasks)
	if !ok {
		return uc.askForTask(conversation.PendingSelectTask, msgSelectTaskDelete, tasks, cc)
	}
	return uc.applyDelete(ctx, target, cc)
}

// applyDelete removes the task and always clears the pending action.
func (uc *implUseCase) applyDelete(ctx context.Context, target model.TaskSummary, cc conversation.Context) (string, conversation.Context) {
	cc.PendingAction = nil

	if err := uc.store.Remove(ctx, target.ID); err != nil {
		uc.l.Errorf(ctx, "usecase.applyDelete: store.Remove id=%s: %v", target.ID, err)
		return msgDeleteFailed, cc
	}

	uc.l.Infof(ctx, "usecase.applyDelete: removed task id=%s", target.ID)
	if cc.LastTaskID == target.ID {
		cc.LastTaskID, cc.LastTaskTitle = "", ""
	}
	return fmt.Sprintf(msgTaskDeleted, target.Title), cc
}
