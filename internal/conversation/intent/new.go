package intent

import (
	"context"

	"task-assistant/internal/conversation"
	"task-assistant/pkg/datemath"
	"task-assistant/pkg/llmprovider"
	pkgLog "task-assistant/pkg/log"
)

// Fallback is the external model consulted when no local rule matches.
// *llmprovider.Manager satisfies it.
type Fallback interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implClassifier struct {
	l        pkgLog.Logger
	dates    *datemath.Parser
	fallback Fallback
	rules    []rule
}

// New creates a classifier. fallback may be nil, in which case utterances no
// rule matches degrade to a plain conversation intent.
func New(l pkgLog.Logger, dates *datemath.Parser, fallback Fallback) conversation.Classifier {
	return &implClassifier{
		l:        l,
		dates:    dates,
		fallback: fallback,
		rules:    defaultRules(),
	}
}
