package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"task-assistant/internal/conversation"
	"task-assistant/internal/model"
	"task-assistant/pkg/llmprovider"
)

const (
	fallbackTemperature = 0.1
	fallbackMaxTokens   = 256
)

// classifyWithFallback asks the external model and parses its answer.
func (c *implClassifier) classifyWithFallback(ctx context.Context, text string, now time.Time, cc conversation.Context) (conversation.Intent, error) {
	if c.fallback == nil {
		return conversation.Intent{}, conversation.ErrFallbackUnavailable
	}

	resp, err := c.fallback.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction(c.dates.StartOfDay(now)),
		Messages:          []llmprovider.Message{{Role: "user", Text: text}},
		Temperature:       fallbackTemperature,
		MaxTokens:         fallbackMaxTokens,
		JSONMode:          true,
	})
	if err != nil {
		return conversation.Intent{}, fmt.Errorf("%w: %w", conversation.ErrFallbackUnavailable, err)
	}

	return c.parseFallback(resp.Text, now, cc)
}

// parseFallback reads the first balanced JSON object of a model answer.
func (c *implClassifier) parseFallback(answer string, now time.Time, cc conversation.Context) (conversation.Intent, error) {
	raw, ok := firstJSONObject(answer)
	if !ok || !gjson.Valid(raw) {
		return conversation.Intent{}, conversation.ErrFallbackUnparsable
	}

	doc := gjson.Parse(raw)
	kind := conversation.IntentKind(strings.TrimSpace(doc.Get("intent").String()))
	if kind == "" {
		return conversation.Intent{}, conversation.ErrFallbackMissingIntent
	}

	it := conversation.Intent{Kind: kind}
	switch kind {
	case conversation.IntentCreateTask:
		it.TaskTitle = strings.TrimSpace(doc.Get("taskTitle").String())
		if it.TaskTitle == "" {
			return conversation.Intent{}, fmt.Errorf("%w: create_task without taskTitle", conversation.ErrFallbackUnparsable)
		}
		it.Priority = model.ParsePriorityOr(doc.Get("priority").String(), model.PriorityMedium)
		if due, ok := c.fallbackDate(doc.Get("dueDate").String(), now); ok {
			it.DueDate = &due
		}

	case conversation.IntentFilterTasks:
		it.FilterType, it.FilterValue = normalizeFilter(doc.Get("filterType").String(), doc.Get("filterValue").String())

	case conversation.IntentUpdateTask:
		it.TaskIdentifier = resolvePronoun(strings.TrimSpace(doc.Get("taskIdentifier").String()), cc)
		it.Action = conversation.UpdateAction(doc.Get("action").String())
		newValue := doc.Get("newValue").String()
		if it.Action != conversation.ActionChangePriority && it.Action != conversation.ActionChangeStatus {
			if _, isStatus := model.ParseStatus(newValue); !isStatus {
				if _, isPriority := model.ParsePriority(newValue); isPriority {
					it.Action = conversation.ActionChangePriority
				}
			}
			if it.Action != conversation.ActionChangePriority {
				it.Action = conversation.ActionChangeStatus
			}
		}
		if it.Action == conversation.ActionChangePriority {
			it.NewValue = string(model.ParsePriorityOr(newValue, model.PriorityMedium))
		} else {
			it.NewValue = string(model.ParseStatusOr(newValue, model.StatusCompleted))
		}

	case conversation.IntentDeleteTask:
		it.TaskIdentifier = resolvePronoun(strings.TrimSpace(doc.Get("taskIdentifier").String()), cc)

	case conversation.IntentGetStatistics:

	case conversation.IntentConversation:
		it.IsGreeting = doc.Get("isGreeting").Bool()

	default:
		return conversation.Intent{}, fmt.Errorf("%w: unknown intent %q", conversation.ErrFallbackMissingIntent, kind)
	}
	return it, nil
}

// fallbackDate accepts an ISO-8601 date or timestamp, keeping its calendar
// day, or any expression the local date parser understands.
func (c *implClassifier) fallbackDate(value string, now time.Time) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	loc := c.dates.Location()
	for _, layout := range []string{time.RFC3339Nano, isoDate} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
		}
	}
	return c.dates.Parse(value, now)
}

func normalizeFilter(filterType, filterValue string) (conversation.FilterType, string) {
	switch conversation.FilterType(filterType) {
	case conversation.FilterPriority:
		if p, ok := model.ParsePriority(filterValue); ok {
			return conversation.FilterPriority, string(p)
		}
	case conversation.FilterStatus:
		if s, ok := model.ParseStatus(filterValue); ok {
			return conversation.FilterStatus, string(s)
		}
	case conversation.FilterDueDate:
		switch v := strings.ToLower(strings.TrimSpace(filterValue)); v {
		case conversation.DueOverdue, conversation.DueToday:
			return conversation.FilterDueDate, v
		}
	}
	return conversation.FilterAll, ""
}

// firstJSONObject returns the first balanced {...} substring, honouring
// braces inside string literals.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
