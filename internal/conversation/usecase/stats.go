package usecase

import (
	"context"

	"task-assistant/internal/conversation"
)

func (uc *implUseCase) statistics(ctx context.Context, cc conversation.Context) (string, conversation.Context) {
	stats, err := uc.store.Stats(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.statistics: store.Stats: %v", err)
		return msgStatsFailed, cc
	}
	return formatStats(stats), cc
}
