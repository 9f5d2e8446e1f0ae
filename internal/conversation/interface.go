package conversation

import (
	"context"
	"time"
)

// UseCase runs one conversation turn. It never fails: every error becomes
// response text.
type UseCase interface {
	HandleTurn(ctx context.Context, in TurnInput) TurnOutput
}

// Classifier maps an utterance to an intent.
type Classifier interface {
	Classify(ctx context.Context, text string, now time.Time, cc Context) ClassifyResult
}
