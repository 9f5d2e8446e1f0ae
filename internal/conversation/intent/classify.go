package intent

import (
	"context"
	"errors"
	"strings"
	"time"

	"task-assistant/internal/conversation"
)

// Classify runs greeting detection, then the ordered rules, then the
// fallback model. It always returns a usable intent.
func (c *implClassifier) Classify(ctx context.Context, text string, now time.Time, cc conversation.Context) conversation.ClassifyResult {
	text = strings.TrimSpace(text)

	if IsGreeting(text) {
		return conversation.ClassifyResult{
			Intent: conversation.ConversationIntent(true),
			Source: conversation.SourceGreeting,
		}
	}

	in := input{text: text, lower: strings.ToLower(text), now: now, cc: cc, dates: c.dates}
	if it, err := c.matchRules(in); err == nil {
		return conversation.ClassifyResult{Intent: it, Source: conversation.SourceRule}
	}

	it, err := c.classifyWithFallback(ctx, text, now, cc)
	if err != nil {
		if errors.Is(err, conversation.ErrFallbackUnavailable) {
			c.l.Debugf(ctx, "intent.Classify: %v", err)
		} else {
			c.l.Warnf(ctx, "intent.Classify: fallback degraded: %v", err)
		}
		return conversation.ClassifyResult{
			Intent: conversation.ConversationIntent(false),
			Source: conversation.SourceDegraded,
			Err:    err,
		}
	}
	return conversation.ClassifyResult{Intent: it, Source: conversation.SourceFallback}
}

// matchRules returns the intent of the first rule whose gate matches and
// whose extractor succeeds.
func (c *implClassifier) matchRules(in input) (conversation.Intent, error) {
	for _, r := range c.rules {
		if !r.gate.MatchString(in.lower) {
			continue
		}
		if it, ok := r.extract(in); ok {
			return it, nil
		}
	}
	return conversation.Intent{}, conversation.ErrNoPatternMatch
}
