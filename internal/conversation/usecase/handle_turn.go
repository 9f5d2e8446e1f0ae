package usecase

import (
	"context"
	"strings"
	"time"

	"task-assistant/internal/conversation"
)

// HandleTurn never fails: store and classification errors become reply text
// and a panic in any branch ends the turn with a generic error message.
func (uc *implUseCase) HandleTurn(ctx context.Context, in conversation.TurnInput) (out conversation.TurnOutput) {
	now := in.Now
	if now.IsZero() {
		now = uc.now()
	}
	text := strings.TrimSpace(in.Text)
	cc := in.Context.Clone()

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "usecase.HandleTurn: recovered panic: %v", r)
			next := in.Context.Clone()
			next.History = appendHistory(next.History, uc.historyLimit, text, msgUnexpectedError)
			out = conversation.TurnOutput{Response: msgUnexpectedError, Context: next}
		}
	}()

	var resp string
	switch {
	case text == "":
		resp = msgEmptyMessage
	case cc.PendingAction != nil:
		resp, cc = uc.handlePending(ctx, text, now, cc)
	default:
		resp, cc = uc.dispatch(ctx, text, now, cc)
	}

	cc.History = appendHistory(cc.History, uc.historyLimit, text, resp)
	return conversation.TurnOutput{Response: resp, Context: cc}
}

// dispatch classifies an utterance received while idle and runs its handler.
func (uc *implUseCase) dispatch(ctx context.Context, text string, now time.Time, cc conversation.Context) (string, conversation.Context) {
	res := uc.classifier.Classify(ctx, text, now, cc)
	uc.l.Debugf(ctx, "usecase.dispatch: intent=%s source=%s", res.Intent.Kind, res.Source)

	it := res.Intent
	switch it.Kind {
	case conversation.IntentCreateTask:
		return uc.createTask(ctx, it, cc)
	case conversation.IntentFilterTasks:
		return uc.filterTasks(ctx, it, now, cc)
	case conversation.IntentUpdateTask:
		return uc.updateTask(ctx, it, cc)
	case conversation.IntentDeleteTask:
		return uc.deleteTask(ctx, it, cc)
	case conversation.IntentGetStatistics:
		return uc.statistics(ctx, cc)
	default:
		return uc.chat(text, it, cc), cc
	}
}
